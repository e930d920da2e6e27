// SPDX-License-Identifier: Apache-2.0

// Package krb5 implements the message protection core of a Kerberos V5
// security package: RFC 4121 MIC tokens, the SPNEGO mechanism type list,
// the authenticator checksum, KDC message framing and service principal
// name handling.
//
// The package deliberately stops short of a full security context.
// Ticket acquisition (AS/TGS exchanges), credential handles and Wrap
// token confidentiality belong to the layers above; what lives here is
// the wire-level material those layers exchange and verify.
package krb5

// SPDX-License-Identifier: Apache-2.0

// Package sspi provides the mechanism-independent pieces of a Security
// Support Provider Interface (SSPI) implementation: the SEC_E security
// status error space, GSS-API context establishment flags and channel
// binding structures.
//
// Security packages live in sub-packages; see the krb5 package for the
// Kerberos V5 message protection core.
package sspi

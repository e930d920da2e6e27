// SPDX-License-Identifier: Apache-2.0

package sspi

import (
	"crypto/tls"
	"crypto/x509"
	"net"

	cb "github.com/golang-auth/go-channelbinding"
)

type GssAddressFamily int

const (
	GssAddrFamilyUNSPEC GssAddressFamily = 0
	GssAddrFamilyLOCAL  GssAddressFamily = 1 << iota
	GssAddrFamilyINET
	GssAddrFamilyIMPLINK
	GssAddrFamilyPUP
	GssAddrFamilyCHAOS
	GssAddrFamilyNS
	GssAddrFamilyNBS
	GssAddrFamilyECMA
	GssAddrFamilyDATAKIT
	GssAddrFamilyCCITT
	GssAddrFamilySNA
	GssAddrFamilyDECnet
	GssAddrFamilyDLI
	GssAddrFamilyLAT
	GssAddrFamilyHYLINK
	GssAddrFamilyAPPLETA
	GssAddrFamilyBSC
	GssAddrFamilyDSS
	GssAddrFamilyOSI
	GssAddrFamilyNETBIOS
	GssAddrFamilyX25
)

// ChannelBinding ties a security context to the transport channel it was
// established over, per RFC 2744 § 3.11.  A Kerberos package hashes this
// structure into the authenticator checksum.
type ChannelBinding struct {
	InitiatorAddr net.Addr
	AcceptorAddr  net.Addr
	Data          []byte
}

// TLSEndpointBinding derives a tls-server-end-point channel binding
// (RFC 5929 § 4) from a TLS connection.  serverCert may be nil on the
// client side, where the server's certificate is taken from the peer
// certificate list instead.
func TLSEndpointBinding(tlsState *tls.ConnectionState, serverCert *x509.Certificate) (*ChannelBinding, error) {
	if tlsState == nil {
		return nil, NewError(SEC_E_INVALID_PARAMETER, "no TLS connection state, needed for channel binding")
	}

	if serverCert == nil {
		if len(tlsState.PeerCertificates) == 0 {
			return nil, NewError(SEC_E_CERT_UNKNOWN, "no server certificate found in TLS connection state, needed for channel binding")
		}
		serverCert = tlsState.PeerCertificates[0]
	}

	data, err := cb.MakeTLSChannelBinding(*tlsState, serverCert, cb.TLSChannelBindingEndpoint)
	if err != nil {
		return nil, Errorf(SEC_E_BAD_BINDINGS, "channel binding: %v", err)
	}

	return &ChannelBinding{Data: data}, nil
}

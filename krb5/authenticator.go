// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"net"

	"github.com/jcmturner/gokrb5/v8/iana/chksumtype"
	"github.com/jcmturner/gokrb5/v8/types"

	"github.com/golang-auth/go-sspi"
)

// NewAuthenticatorChecksum builds the checksum field of an AP-REQ
// authenticator.  This isn't really a checksum: it is how GSS-API level
// context information (the requested flags and any channel binding) rides
// inside the Kerberos handshake.  See RFC 4121 § 4.1.1.
func NewAuthenticatorChecksum(flags sspi.ContextFlag, cb *sspi.ChannelBinding) types.Checksum {
	return types.Checksum{
		CksumType: chksumtype.GSSAPI,
		Checksum:  authenticatorChecksumData(flags, cb),
	}
}

func authenticatorChecksumData(flags sspi.ContextFlag, cb *sspi.ChannelBinding) []byte {
	// 24 octet minimum length, up to and including context-establishment flags
	a := make([]byte, 24)

	// 4-byte length of the channel binding hash, always 16
	binary.LittleEndian.PutUint32(a[:4], 16)

	// octets 4..19: channel binding hash, or zeros when there is no binding
	if cb != nil {
		copy(a[4:20], channelBindingHash(cb))
	}

	// octets 20..23: context-establishment flags
	binary.LittleEndian.PutUint32(a[20:24], uint32(flags))

	return a
}

// channelBindingHash derives the 16-byte digest of a GSS channel binding
// structure (RFC 4121 § 4.1.1.2): MD5 over the little-endian framed
// initiator address, acceptor address and application data.
func channelBindingHash(cb *sspi.ChannelBinding) []byte {
	var buf bytes.Buffer

	for _, addr := range []net.Addr{cb.InitiatorAddr, cb.AcceptorAddr} {
		family, data := gssAddress(addr)

		putUint32(&buf, uint32(family))
		putUint32(&buf, uint32(len(data)))
		buf.Write(data)
	}

	putUint32(&buf, uint32(len(cb.Data)))
	buf.Write(cb.Data)

	hashed := md5.Sum(buf.Bytes())
	return hashed[:]
}

// gssAddress maps a net.Addr onto the GSS address family and raw address
// bytes the binding structure frames.  A nil or unrecognised address is
// the unspecified family with no data.
func gssAddress(addr net.Addr) (sspi.GssAddressFamily, []byte) {
	switch c := addr.(type) {
	case *net.IPAddr:
		return sspi.GssAddrFamilyINET, ipData(c.IP)
	case *net.TCPAddr:
		return sspi.GssAddrFamilyINET, ipData(c.IP)
	case *net.UDPAddr:
		return sspi.GssAddrFamilyINET, ipData(c.IP)
	case *net.UnixAddr:
		return sspi.GssAddrFamilyLOCAL, []byte(c.Name)
	}

	return sspi.GssAddrFamilyUNSPEC, nil
}

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// ipData returns the shortest raw form of addr: 4 bytes for IPv4, 16 for
// IPv6.
func ipData(addr net.IP) net.IP {
	if v4 := addr.To4(); v4 != nil {
		return v4
	}

	return addr.To16()
}

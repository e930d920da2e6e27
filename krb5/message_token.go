// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"bytes"
	"encoding/binary"

	"github.com/golang-auth/go-sspi"
)

// RFC 4121 § 4.2.6
const msgTokenHdrLen = 16

// RFC 4121 § 4.2.2
type GSSMessageTokenFlag uint8

const (
	GSSMessageTokenFlagSentByAcceptor GSSMessageTokenFlag = 1 << iota
	GSSMessageTokenFlagSealed
	GSSMessageTokenFlagAcceptorSubkey
)

// Return the 2 bytes identifying a GSS API MIC token
func getGssMICTokenID() [2]byte {
	return [2]byte{0x04, 0x04}
}

// MICToken is a GSS API MIC token: a detached signature over a payload
// that is carried separately (RFC 4121 § 4.2.6.1).
type MICToken struct {
	// 2 byte token ID (0x04, 0x04)
	Flags GSSMessageTokenFlag
	// 5 byte filler (0xFF)
	SequenceNumber uint64 // 64-bit sequence number
	Checksum       []byte
}

// NewInitiatorMICToken returns an unsigned MIC token carrying the flags
// an initiator sends: acceptor-subkey set, sent-by-acceptor clear.
func NewInitiatorMICToken(seqNumber uint64) MICToken {
	return MICToken{
		Flags:          GSSMessageTokenFlagAcceptorSubkey,
		SequenceNumber: seqNumber,
	}
}

// header returns the 16-byte token header that both peers feed into the
// checksum calculation.
func (mt *MICToken) header() (hdr []byte) {
	hdr = make([]byte, msgTokenHdrLen)

	tokID := getGssMICTokenID()
	hdr1 := []byte{
		tokID[0], tokID[1], // token ID
		byte(mt.Flags),               // flags
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // filler
	}

	copy(hdr, hdr1)
	binary.BigEndian.PutUint64(hdr[8:], mt.SequenceNumber)

	return
}

// Marshal encodes a signed token.  A token whose checksum has not been
// set yet has no valid wire form.
func (mt *MICToken) Marshal() (token []byte, err error) {
	if len(mt.Checksum) == 0 {
		err = sspi.NewError(sspi.SEC_E_INTERNAL_ERROR, "MIC token is not signed")
		return
	}

	token = make([]byte, msgTokenHdrLen+len(mt.Checksum))

	copy(token, mt.header())
	copy(token[msgTokenHdrLen:], mt.Checksum)

	return
}

func (mt *MICToken) Unmarshal(token []byte) (err error) {
	// zero out the MIC token
	*mt = MICToken{}

	if len(token) < msgTokenHdrLen {
		return sspi.NewError(sspi.SEC_E_INVALID_TOKEN, "MIC token is too short")
	}

	// As per RFC 4121 § 4.4, the token IDs starting with 0x60 are reserved;
	// they indicate the generic GSS-API framing used by GSS-API v1 which is
	// not supported in GSS-API v2.. catch that specific case so we can emit
	// a useful message
	if token[0] == 0x60 {
		return sspi.NewError(sspi.SEC_E_INVALID_TOKEN, "GSS-API v1 message tokens are not supported")
	}

	tokenID := getGssMICTokenID()
	if !bytes.Equal(tokenID[:], token[0:2]) {
		return sspi.NewError(sspi.SEC_E_INVALID_TOKEN, "bad MIC token ID")
	}

	mt.Flags = GSSMessageTokenFlag(token[2])

	if !bytes.Equal(token[3:8], []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}) {
		return sspi.NewError(sspi.SEC_E_INVALID_TOKEN, "invalid MIC token (bad filler)")
	}

	mt.SequenceNumber = binary.BigEndian.Uint64(token[8:16])

	if len(token) > msgTokenHdrLen {
		mt.Checksum = token[16:]
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"crypto/hmac"

	"github.com/jcmturner/gokrb5/v8/iana/keyusage"

	"github.com/golang-auth/go-sspi"
)

// GenerateInitiatorMIC signs payload and returns the encoded MIC token
// the initiator sends during SPNEGO negotiation.  The checksum is
// calculated over payload followed by the token header, always with the
// initiator sign key usage and an AES-256 checksum over the ticket
// session key: at this point in the handshake no sub-session key or
// encryption type has been negotiated yet.
func GenerateInitiatorMIC(payload []byte, seqNumber uint64, sessionKey []byte) ([]byte, error) {
	mt := NewInitiatorMICToken(seqNumber)

	cksumData := make([]byte, 0, len(payload)+msgTokenHdrLen)
	cksumData = append(cksumData, payload...)
	cksumData = append(cksumData, mt.header()...)

	cksum, err := checksumShaAes(sessionKey, uint32(keyusage.GSSAPI_INITIATOR_SIGN), cksumData, Aes256)
	if err != nil {
		return nil, err
	}
	mt.Checksum = cksum

	return mt.Marshal()
}

// VerifyMICToken checks the MIC token a peer sent over the negotiated
// mechanism type list.  The expected checksum is calculated over the
// DER-encoded mech type list followed by the received token header, with
// the key usage the caller's side of the context expects and the key
// strength from params.
//
// The token's sequence number and flags are not policed here; the
// security context owns that state.
func VerifyMICToken(rawToken []byte, keyUsage uint32, params *EncryptionParams) error {
	mt := MICToken{}
	if err := mt.Unmarshal(rawToken); err != nil {
		return err
	}

	mechList, err := MarshalMechTypeList()
	if err != nil {
		return err
	}

	cksumData := make([]byte, 0, len(mechList)+msgTokenHdrLen)
	cksumData = append(cksumData, mechList...)
	cksumData = append(cksumData, mt.header()...)

	// the sub-session key is always preferred over the session key
	key, _, err := params.ResolveKey()
	if err != nil {
		return err
	}

	cksum, err := checksumShaAes(key, keyUsage, cksumData, params.AesSize())
	if err != nil {
		return err
	}

	if !hmac.Equal(cksum, mt.Checksum) {
		return sspi.NewError(sspi.SEC_E_MESSAGE_ALTERED, "bad checksum of the mic token")
	}

	return nil
}

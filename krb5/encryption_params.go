// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"github.com/jcmturner/gokrb5/v8/iana/etypeID"
	"github.com/jcmturner/gokrb5/v8/iana/keyusage"

	"github.com/golang-auth/go-sspi"
)

// AesSize selects between the two AES-CTS-HMAC-SHA1-96 encryption types
// from RFC 3962.  The zero value is Aes256, which is also what every
// operation assumes when no encryption type has been negotiated.
type AesSize int

const (
	Aes256 AesSize = iota
	Aes128
)

// EType returns the IANA encryption type ID for the key size.
func (s AesSize) EType() int32 {
	if s == Aes128 {
		return etypeID.AES128_CTS_HMAC_SHA1_96
	}

	return etypeID.AES256_CTS_HMAC_SHA1_96
}

// KeyLen returns the protocol key length in bytes.
func (s AesSize) KeyLen() int {
	if s == Aes128 {
		return 16
	}

	return 32
}

func (s AesSize) String() string {
	if s == Aes128 {
		return "aes128-cts-hmac-sha1-96"
	}

	return "aes256-cts-hmac-sha1-96"
}

// KeySource names which key of an EncryptionParams satisfied a key lookup.
type KeySource int

const (
	KeySourceNone KeySource = iota
	KeySourceSubSession
	KeySourceSession
)

func (s KeySource) String() string {
	switch s {
	case KeySourceSubSession:
		return "sub-session key"
	case KeySourceSession:
		return "session key"
	}

	return "no key"
}

// EncryptionParams holds the per-context cryptographic state negotiated
// during authentication: the ticket session key, the optional sub-session
// key from the authenticator or AP-REP, the negotiated encryption type
// and the RFC 4121 key usages for each message direction.
type EncryptionParams struct {
	EType           int32 // negotiated encryption type, 0 when not yet known
	SessionKey      []byte
	SubSessionKey   []byte
	EncryptKeyUsage uint32
	DecryptKeyUsage uint32
}

// NewClientEncryptionParams returns the parameters an initiator starts
// with: messages it protects use the initiator seal usage, messages it
// accepts use the acceptor seal usage.
func NewClientEncryptionParams() *EncryptionParams {
	return &EncryptionParams{
		EType:           Aes256.EType(),
		EncryptKeyUsage: uint32(keyusage.GSSAPI_INITIATOR_SEAL),
		DecryptKeyUsage: uint32(keyusage.GSSAPI_ACCEPTOR_SEAL),
	}
}

// NewServerEncryptionParams is the acceptor-side mirror of
// NewClientEncryptionParams.
func NewServerEncryptionParams() *EncryptionParams {
	return &EncryptionParams{
		EType:           Aes256.EType(),
		EncryptKeyUsage: uint32(keyusage.GSSAPI_ACCEPTOR_SEAL),
		DecryptKeyUsage: uint32(keyusage.GSSAPI_INITIATOR_SEAL),
	}
}

// AesSize reports the AES key strength selected by the negotiated
// encryption type.  Aes256 is assumed when the type is unset or not an
// AES CTS type.
func (p *EncryptionParams) AesSize() AesSize {
	if p.EType == etypeID.AES128_CTS_HMAC_SHA1_96 {
		return Aes128
	}

	return Aes256
}

// ResolveKey returns the key to use for verifying per-message tokens.
// The sub-session key is always preferred over the ticket session key.
func (p *EncryptionParams) ResolveKey() ([]byte, KeySource, error) {
	switch {
	case len(p.SubSessionKey) > 0:
		return p.SubSessionKey, KeySourceSubSession, nil
	case len(p.SessionKey) > 0:
		return p.SessionKey, KeySourceSession, nil
	}

	return nil, KeySourceNone, sspi.NewError(sspi.SEC_E_DECRYPT_FAILURE, "unable to obtain decryption key")
}

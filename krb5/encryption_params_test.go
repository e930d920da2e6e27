// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"testing"

	"github.com/jcmturner/gokrb5/v8/iana/etypeID"
	"github.com/jcmturner/gokrb5/v8/iana/keyusage"
	"github.com/stretchr/testify/assert"

	"github.com/golang-auth/go-sspi"
)

func TestAesSize(t *testing.T) {
	assert.Equal(t, Aes256, AesSize(0), "zero value must be the AES-256 default")

	assert.Equal(t, etypeID.AES256_CTS_HMAC_SHA1_96, Aes256.EType())
	assert.Equal(t, etypeID.AES128_CTS_HMAC_SHA1_96, Aes128.EType())

	assert.Equal(t, 32, Aes256.KeyLen())
	assert.Equal(t, 16, Aes128.KeyLen())

	assert.Equal(t, "aes256-cts-hmac-sha1-96", Aes256.String())
	assert.Equal(t, "aes128-cts-hmac-sha1-96", Aes128.String())
}

func TestEncryptionParamsDefaults(t *testing.T) {
	client := NewClientEncryptionParams()
	assert.Equal(t, uint32(keyusage.GSSAPI_INITIATOR_SEAL), client.EncryptKeyUsage)
	assert.Equal(t, uint32(keyusage.GSSAPI_ACCEPTOR_SEAL), client.DecryptKeyUsage)

	server := NewServerEncryptionParams()
	assert.Equal(t, uint32(keyusage.GSSAPI_ACCEPTOR_SEAL), server.EncryptKeyUsage)
	assert.Equal(t, uint32(keyusage.GSSAPI_INITIATOR_SEAL), server.DecryptKeyUsage)

	// each side decrypts what the other encrypts
	assert.Equal(t, client.EncryptKeyUsage, server.DecryptKeyUsage)
	assert.Equal(t, client.DecryptKeyUsage, server.EncryptKeyUsage)

	assert.Equal(t, Aes256, client.AesSize())
}

func TestEncryptionParamsAesSize(t *testing.T) {
	tests := []struct {
		name  string
		etype int32
		want  AesSize
	}{
		{"aes128", etypeID.AES128_CTS_HMAC_SHA1_96, Aes128},
		{"aes256", etypeID.AES256_CTS_HMAC_SHA1_96, Aes256},
		{"unset", 0, Aes256},
		{"non-aes", etypeID.DES3_CBC_SHA1_KD, Aes256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &EncryptionParams{EType: tt.etype}
			assert.Equal(t, tt.want, params.AesSize())
		})
	}
}

func TestResolveKey(t *testing.T) {
	sessionKey := []byte{0x01}
	subKey := []byte{0x02}

	tests := []struct {
		name       string
		params     *EncryptionParams
		wantKey    []byte
		wantSource KeySource
	}{
		{"both keys", &EncryptionParams{SessionKey: sessionKey, SubSessionKey: subKey}, subKey, KeySourceSubSession},
		{"sub-session only", &EncryptionParams{SubSessionKey: subKey}, subKey, KeySourceSubSession},
		{"session only", &EncryptionParams{SessionKey: sessionKey}, sessionKey, KeySourceSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, source, err := tt.params.ResolveKey()
			assert.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestResolveKeyMissing(t *testing.T) {
	params := NewServerEncryptionParams()

	key, source, err := params.ResolveKey()
	assert.Nil(t, key)
	assert.Equal(t, KeySourceNone, source)
	assert.ErrorIs(t, err, sspi.ErrDecryptFailure)
}

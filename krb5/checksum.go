// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"github.com/jcmturner/gokrb5/v8/crypto"

	"github.com/golang-auth/go-sspi"
)

// checksumShaAes computes the RFC 3962 keyed checksum (hmac-sha1-96 over
// an AES-CTS key) of data.  The checksum length is whatever the
// encryption type produces; callers must not assume a fixed size.
func checksumShaAes(key []byte, usage uint32, data []byte, size AesSize) ([]byte, error) {
	encType, err := crypto.GetEtype(size.EType())
	if err != nil {
		return nil, sspi.Errorf(sspi.SEC_E_INTERNAL_ERROR, "checksum: %v", err)
	}

	cksum, err := encType.GetChecksumHash(key, data, usage)
	if err != nil {
		return nil, sspi.Errorf(sspi.SEC_E_INTERNAL_ERROR, "checksum: %v", err)
	}

	return cksum, nil
}

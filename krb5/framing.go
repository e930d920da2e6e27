// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"encoding/binary"
	"io"

	"github.com/golang-auth/go-sspi"
)

// Marshaler is the slice of a Kerberos message the framing layer needs.
// All gokrb5 message types satisfy it.
type Marshaler interface {
	Marshal() ([]byte, error)
}

// maxMessageLen bounds the length prefix ReadMessage will honour, so a
// broken or hostile peer cannot make us allocate gigabytes.
const maxMessageLen = 10 * 1024 * 1024

// SerializeMessage encodes msg for the KDC TCP transport (RFC 4120
// § 7.2.2): a 4-byte big-endian length followed by the encoded message.
func SerializeMessage(msg Marshaler) ([]byte, error) {
	body, err := msg.Marshal()
	if err != nil {
		return nil, sspi.Errorf(sspi.SEC_E_INTERNAL_ERROR, "marshalling message: %v", err)
	}

	data := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(data, uint32(len(body)))
	copy(data[4:], body)

	return data, nil
}

// ReadMessage reads one length-prefixed message from r and returns its
// body.  Short reads and oversized length prefixes are reported as
// invalid tokens.
func ReadMessage(r io.Reader) ([]byte, error) {
	var szBuf [4]byte
	if _, err := io.ReadFull(r, szBuf[:]); err != nil {
		return nil, sspi.Errorf(sspi.SEC_E_INVALID_TOKEN, "reading message length: %v", err)
	}

	sz := binary.BigEndian.Uint32(szBuf[:])
	if sz > maxMessageLen {
		return nil, sspi.Errorf(sspi.SEC_E_INVALID_TOKEN, "message length %d exceeds maximum %d", sz, maxMessageLen)
	}

	body := make([]byte, sz)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, sspi.Errorf(sspi.SEC_E_INVALID_TOKEN, "reading message body: %v", err)
	}

	return body, nil
}

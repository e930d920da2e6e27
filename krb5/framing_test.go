// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/jcmturner/gokrb5/v8/iana/errorcode"
	"github.com/jcmturner/gokrb5/v8/iana/nametype"
	"github.com/jcmturner/gokrb5/v8/messages"
	"github.com/jcmturner/gokrb5/v8/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golang-auth/go-sspi"
)

type stubMessage struct {
	body []byte
	err  error
}

func (m *stubMessage) Marshal() ([]byte, error) {
	return m.body, m.err
}

func TestSerializeMessage(t *testing.T) {
	bodies := [][]byte{
		nil,
		{0xAB},
		bytes.Repeat([]byte{0x5A}, 1021),
	}

	for _, body := range bodies {
		data, err := SerializeMessage(&stubMessage{body: body})
		require.NoError(t, err)

		require.Equal(t, 4+len(body), len(data), "framed length")
		assert.Equal(t, uint32(len(body)), binary.BigEndian.Uint32(data[:4]), "length prefix")
		assert.Equal(t, body, data[4:4+len(body)], "body")
	}
}

func TestSerializeMessageEncodeError(t *testing.T) {
	data, err := SerializeMessage(&stubMessage{err: errors.New("boom")})

	assert.Nil(t, data, "no partial output on encoder failure")
	assert.ErrorIs(t, err, sspi.ErrInternalError)
}

func TestSerializeMessageKRBError(t *testing.T) {
	cname := types.NewPrincipalName(nametype.KRB_NT_PRINCIPAL, "user")
	krbErr := messages.NewKRBError(cname, "EXAMPLE.COM", errorcode.KDC_ERR_C_PRINCIPAL_UNKNOWN, "unknown client")

	data, err := SerializeMessage(&krbErr)
	require.NoError(t, err)

	body, err := ReadMessage(bytes.NewReader(data))
	require.NoError(t, err)

	var decoded messages.KRBError
	require.NoError(t, decoded.Unmarshal(body))
	assert.Equal(t, "unknown client", decoded.EText)
	assert.Equal(t, errorcode.KDC_ERR_C_PRINCIPAL_UNKNOWN, decoded.ErrorCode)
}

func TestReadMessage(t *testing.T) {
	data, err := SerializeMessage(&stubMessage{body: []byte("krb-msg")})
	require.NoError(t, err)

	body, err := ReadMessage(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, []byte("krb-msg"), body)
}

func TestReadMessageBad(t *testing.T) {
	short := make([]byte, 4)
	binary.BigEndian.PutUint32(short, 10)

	huge := make([]byte, 4)
	binary.BigEndian.PutUint32(huge, maxMessageLen+1)

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated prefix", []byte{0x00, 0x00}},
		{"truncated body", append(short, 0x01, 0x02)},
		{"oversized length", huge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMessage(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, sspi.ErrInvalidToken)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0

package sspi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := NewError(SEC_E_MESSAGE_ALTERED, "bad checksum of the mic token")
	assert.Equal(t, "sspi: SEC_E_MESSAGE_ALTERED: bad checksum of the mic token", err.Error())

	err = Errorf(SEC_E_INVALID_TOKEN, "token is %d bytes, want at least %d", 3, 16)
	assert.Equal(t, "sspi: SEC_E_INVALID_TOKEN: token is 3 bytes, want at least 16", err.Error())

	// match targets carry no message
	assert.Equal(t, "sspi: SEC_E_DECRYPT_FAILURE", ErrDecryptFailure.Error())
}

func TestErrorIs(t *testing.T) {
	err := NewError(SEC_E_MESSAGE_ALTERED, "bad checksum of the mic token")

	assert.ErrorIs(t, err, ErrMessageAltered)
	assert.NotErrorIs(t, err, ErrDecryptFailure)

	// matching survives wrapping
	wrapped := fmt.Errorf("verifying peer token: %w", err)
	assert.ErrorIs(t, wrapped, ErrMessageAltered)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, SEC_E_OK, StatusOf(nil))
	assert.Equal(t, SEC_E_INVALID_PARAMETER, StatusOf(NewError(SEC_E_INVALID_PARAMETER, "no")))

	wrapped := fmt.Errorf("outer: %w", NewError(SEC_E_DECRYPT_FAILURE, "no key"))
	assert.Equal(t, SEC_E_DECRYPT_FAILURE, StatusOf(wrapped))

	// foreign errors map to the generic internal failure
	assert.Equal(t, SEC_E_INTERNAL_ERROR, StatusOf(errors.New("dial tcp: connection refused")))
}

func TestSecurityStatusString(t *testing.T) {
	assert.Equal(t, "SEC_E_OK", SEC_E_OK.String())
	assert.Equal(t, "SEC_E_INVALID_PARAMETER", SEC_E_INVALID_PARAMETER.String())
	assert.Equal(t, "SEC_E_(0x80091234)", SecurityStatus(0x80091234).String())
}

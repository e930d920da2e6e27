// SPDX-License-Identifier: Apache-2.0

package sspi

import (
	"errors"
	"fmt"
)

// SecurityStatus is the SSPI security status code space.  Values are the
// same as the SEC_E_* constants from the Windows SDK (sspi.h) so that
// failures can be reported to SSPI-speaking peers without translation.
type SecurityStatus uint32

// Security status codes.  The set is closed: every error produced by this
// module carries one of these values.
const (
	SEC_E_OK SecurityStatus = 0x00000000

	SEC_E_INSUFFICIENT_MEMORY         SecurityStatus = 0x80090300
	SEC_E_INVALID_HANDLE              SecurityStatus = 0x80090301
	SEC_E_UNSUPPORTED_FUNCTION        SecurityStatus = 0x80090302
	SEC_E_TARGET_UNKNOWN              SecurityStatus = 0x80090303
	SEC_E_INTERNAL_ERROR              SecurityStatus = 0x80090304
	SEC_E_SECPKG_NOT_FOUND            SecurityStatus = 0x80090305
	SEC_E_INVALID_TOKEN               SecurityStatus = 0x80090308
	SEC_E_QOP_NOT_SUPPORTED           SecurityStatus = 0x8009030A
	SEC_E_LOGON_DENIED                SecurityStatus = 0x8009030C
	SEC_E_UNKNOWN_CREDENTIALS         SecurityStatus = 0x8009030D
	SEC_E_NO_CREDENTIALS              SecurityStatus = 0x8009030E
	SEC_E_MESSAGE_ALTERED             SecurityStatus = 0x8009030F
	SEC_E_OUT_OF_SEQUENCE             SecurityStatus = 0x80090310
	SEC_E_NO_AUTHENTICATING_AUTHORITY SecurityStatus = 0x80090311
	SEC_E_CONTEXT_EXPIRED             SecurityStatus = 0x80090317
	SEC_E_INCOMPLETE_MESSAGE          SecurityStatus = 0x80090318
	SEC_E_BUFFER_TOO_SMALL            SecurityStatus = 0x80090321
	SEC_E_WRONG_PRINCIPAL             SecurityStatus = 0x80090322
	SEC_E_TIME_SKEW                   SecurityStatus = 0x80090324
	SEC_E_CERT_UNKNOWN                SecurityStatus = 0x80090327
	SEC_E_CERT_EXPIRED                SecurityStatus = 0x80090328
	SEC_E_ENCRYPT_FAILURE             SecurityStatus = 0x80090329
	SEC_E_DECRYPT_FAILURE             SecurityStatus = 0x80090330
	SEC_E_INVALID_PARAMETER           SecurityStatus = 0x8009035D
	SEC_E_DELEGATION_REQUIRED         SecurityStatus = 0x8009035E
	SEC_E_BAD_BINDINGS                SecurityStatus = 0x8009035F
)

func (s SecurityStatus) String() string {
	switch s {
	case SEC_E_OK:
		return "SEC_E_OK"
	case SEC_E_INSUFFICIENT_MEMORY:
		return "SEC_E_INSUFFICIENT_MEMORY"
	case SEC_E_INVALID_HANDLE:
		return "SEC_E_INVALID_HANDLE"
	case SEC_E_UNSUPPORTED_FUNCTION:
		return "SEC_E_UNSUPPORTED_FUNCTION"
	case SEC_E_TARGET_UNKNOWN:
		return "SEC_E_TARGET_UNKNOWN"
	case SEC_E_INTERNAL_ERROR:
		return "SEC_E_INTERNAL_ERROR"
	case SEC_E_SECPKG_NOT_FOUND:
		return "SEC_E_SECPKG_NOT_FOUND"
	case SEC_E_INVALID_TOKEN:
		return "SEC_E_INVALID_TOKEN"
	case SEC_E_QOP_NOT_SUPPORTED:
		return "SEC_E_QOP_NOT_SUPPORTED"
	case SEC_E_LOGON_DENIED:
		return "SEC_E_LOGON_DENIED"
	case SEC_E_UNKNOWN_CREDENTIALS:
		return "SEC_E_UNKNOWN_CREDENTIALS"
	case SEC_E_NO_CREDENTIALS:
		return "SEC_E_NO_CREDENTIALS"
	case SEC_E_MESSAGE_ALTERED:
		return "SEC_E_MESSAGE_ALTERED"
	case SEC_E_OUT_OF_SEQUENCE:
		return "SEC_E_OUT_OF_SEQUENCE"
	case SEC_E_NO_AUTHENTICATING_AUTHORITY:
		return "SEC_E_NO_AUTHENTICATING_AUTHORITY"
	case SEC_E_CONTEXT_EXPIRED:
		return "SEC_E_CONTEXT_EXPIRED"
	case SEC_E_INCOMPLETE_MESSAGE:
		return "SEC_E_INCOMPLETE_MESSAGE"
	case SEC_E_BUFFER_TOO_SMALL:
		return "SEC_E_BUFFER_TOO_SMALL"
	case SEC_E_WRONG_PRINCIPAL:
		return "SEC_E_WRONG_PRINCIPAL"
	case SEC_E_TIME_SKEW:
		return "SEC_E_TIME_SKEW"
	case SEC_E_CERT_UNKNOWN:
		return "SEC_E_CERT_UNKNOWN"
	case SEC_E_CERT_EXPIRED:
		return "SEC_E_CERT_EXPIRED"
	case SEC_E_ENCRYPT_FAILURE:
		return "SEC_E_ENCRYPT_FAILURE"
	case SEC_E_DECRYPT_FAILURE:
		return "SEC_E_DECRYPT_FAILURE"
	case SEC_E_INVALID_PARAMETER:
		return "SEC_E_INVALID_PARAMETER"
	case SEC_E_DELEGATION_REQUIRED:
		return "SEC_E_DELEGATION_REQUIRED"
	case SEC_E_BAD_BINDINGS:
		return "SEC_E_BAD_BINDINGS"
	}

	return fmt.Sprintf("SEC_E_(0x%08X)", uint32(s))
}

// Error is the error type returned by every fallible operation in this
// module.  Callers match on the status code with errors.Is and one of the
// Err* values below, or with StatusOf; the message is for humans only.
type Error struct {
	Status  SecurityStatus
	Message string
}

func NewError(status SecurityStatus, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Errorf is NewError with fmt.Sprintf formatting of the message.
func Errorf(status SecurityStatus, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sspi: %s", e.Status)
	}

	return fmt.Sprintf("sspi: %s: %s", e.Status, e.Message)
}

// Is matches errors by security status so that
//
//	errors.Is(err, sspi.ErrMessageAltered)
//
// holds for any Error carrying SEC_E_MESSAGE_ALTERED, whatever its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Status == t.Status
}

// StatusOf returns the security status carried by err.  It returns
// SEC_E_OK for a nil error, and SEC_E_INTERNAL_ERROR for errors that did
// not originate in this module.
func StatusOf(err error) SecurityStatus {
	if err == nil {
		return SEC_E_OK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}

	return SEC_E_INTERNAL_ERROR
}

// Err* values are match targets for errors.Is; they are never returned
// directly.
var (
	ErrInternalError     = NewError(SEC_E_INTERNAL_ERROR, "")
	ErrInvalidToken      = NewError(SEC_E_INVALID_TOKEN, "")
	ErrNoCredentials     = NewError(SEC_E_NO_CREDENTIALS, "")
	ErrMessageAltered    = NewError(SEC_E_MESSAGE_ALTERED, "")
	ErrOutOfSequence     = NewError(SEC_E_OUT_OF_SEQUENCE, "")
	ErrIncompleteMessage = NewError(SEC_E_INCOMPLETE_MESSAGE, "")
	ErrEncryptFailure    = NewError(SEC_E_ENCRYPT_FAILURE, "")
	ErrDecryptFailure    = NewError(SEC_E_DECRYPT_FAILURE, "")
	ErrInvalidParameter  = NewError(SEC_E_INVALID_PARAMETER, "")
	ErrCertUnknown       = NewError(SEC_E_CERT_UNKNOWN, "")
	ErrBadBindings       = NewError(SEC_E_BAD_BINDINGS, "")
)

// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"strings"

	"github.com/jcmturner/gokrb5/v8/iana/nametype"
	"github.com/jcmturner/gokrb5/v8/types"

	"github.com/golang-auth/go-sspi"
)

// ParseTargetName splits a target of the form "service/hostname" at the
// first separator.  Both parts must be non-empty.
func ParseTargetName(targetName string) (service, host string, err error) {
	divider := strings.Index(targetName, "/")

	switch divider {
	case -1:
		err = sspi.NewError(sspi.SEC_E_INVALID_PARAMETER, "invalid service principal name: missing '/'")
	case 0:
		err = sspi.NewError(sspi.SEC_E_INVALID_PARAMETER, "invalid service principal name: empty service")
	case len(targetName) - 1:
		err = sspi.NewError(sspi.SEC_E_INVALID_PARAMETER, "invalid service principal name: empty hostname")
	default:
		service, host = targetName[:divider], targetName[divider+1:]
	}

	return
}

// RequireHostname guards operations that cannot proceed without knowing
// which host they authenticate to.
func RequireHostname(hostname string) (string, error) {
	if hostname == "" {
		return "", sspi.NewError(sspi.SEC_E_INVALID_PARAMETER, "the hostname is not provided")
	}

	return hostname, nil
}

// ServicePrincipal builds the Kerberos principal a ticket request for
// targetName names.
func ServicePrincipal(targetName string) (types.PrincipalName, error) {
	service, host, err := ParseTargetName(targetName)
	if err != nil {
		return types.PrincipalName{}, err
	}

	return types.PrincipalName{
		NameType:   nametype.KRB_NT_SRV_INST,
		NameString: []string{service, host},
	}, nil
}

// SPDX-License-Identifier: Apache-2.0

package krb5

import (
	"github.com/jcmturner/gofork/encoding/asn1"

	"github.com/golang-auth/go-sspi"
)

// OID returns the Kerberos V5 mechanism OID (RFC 4121 § 4.1).
func OID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{1, 2, 840, 113554, 1, 2, 2}
}

// MSOID returns the Microsoft variant of the Kerberos V5 OID.  Early
// Windows releases shipped it with a mis-encoded arc and it has been part
// of SPNEGO negotiations ever since (see MS-SPNG § 1.3).
func MSOID() asn1.ObjectIdentifier {
	return asn1.ObjectIdentifier{1, 2, 840, 48018, 1, 2, 2}
}

// MechTypeList returns the mechanisms offered in SPNEGO negotiation, in
// preference order.  Windows offers its own Kerberos OID ahead of the
// IETF one, and the MIC exchanged at the end of the negotiation signs
// exactly this list, so the order is part of the wire contract.
func MechTypeList() []asn1.ObjectIdentifier {
	return []asn1.ObjectIdentifier{MSOID(), OID()}
}

// MarshalMechTypeList returns the DER encoding of MechTypeList: the
// SEQUENCE OF OID that SPNEGO's negTokenInit carries and that MIC tokens
// sign.
func MarshalMechTypeList() ([]byte, error) {
	b, err := asn1.Marshal(MechTypeList())
	if err != nil {
		return nil, sspi.Errorf(sspi.SEC_E_INTERNAL_ERROR, "marshalling mech type list: %v", err)
	}

	return b, nil
}

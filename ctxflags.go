// SPDX-License-Identifier: Apache-2.0

package sspi

import "strings"

// ContextFlag holds the GSS-API context establishment flags that a
// Kerberos security package carries in the authenticator checksum
// (RFC 4121 § 4.1.1).  Values are the same as the C bindings for
// compatibility.
type ContextFlag uint32

const (
	ContextFlagDeleg    ContextFlag = 1 << iota // delegate credentials to the acceptor
	ContextFlagMutual                           // the acceptor must authenticate itself too
	ContextFlagReplay                           // replay detection on signed/sealed messages
	ContextFlagSequence                         // out-of-sequence detection on signed/sealed messages
	ContextFlagConf                             // confidentiality available
	ContextFlagInteg                            // integrity available
	ContextFlagAnon                             // do not reveal the initiator identity

	// extensions
	ContextFlagChannelBound = 0x800 // require channel bindings

	// Microsoft extensions - see RFC 4757 § 7.1
	ContextFlagDceStyle      = 0x1000 // extra AP-REP from client after the server's AP-REP
	ContextFlagIdentify      = 0x2000 // identify the client but do not impersonate it
	ContextFlagExtendedError = 0x4000 // Windows status codes in Kerberos error messages
)

// FlagList splits the composite value f into its individual flag bits.
func FlagList(f ContextFlag) []ContextFlag {
	var fl []ContextFlag
	for t := ContextFlag(1); t != 0; t <<= 1 {
		if f&t != 0 {
			fl = append(fl, t)
		}
	}

	return fl
}

// FlagName returns a human-readable description of a single flag value.
func FlagName(f ContextFlag) string {
	switch f {
	case ContextFlagDeleg:
		return "Delegation"
	case ContextFlagMutual:
		return "Mutual authentication"
	case ContextFlagReplay:
		return "Message replay detection"
	case ContextFlagSequence:
		return "Out of sequence message detection"
	case ContextFlagConf:
		return "Confidentiality"
	case ContextFlagInteg:
		return "Integrity"
	case ContextFlagAnon:
		return "Anonymous"
	case ContextFlagChannelBound:
		return "Channel Bindings"
	case ContextFlagDceStyle:
		return "DCE style"
	case ContextFlagIdentify:
		return "Identify only"
	case ContextFlagExtendedError:
		return "Extended errors"
	}

	return "Unknown"
}

func (f ContextFlag) String() string {
	var sb strings.Builder
	for i, flag := range FlagList(f) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FlagName(flag))
	}

	return sb.String()
}

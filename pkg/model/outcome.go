package model

// Outcome is the single classification a probe resolves to.
type Outcome int

const (
	Success Outcome = iota
	ConnectionRefusedOrAddressError
	HostResolutionOrProtocolError
	AddressFamilyError
	Timeout
	UnknownFailure
	BannerMismatch
)

// Exit codes are part of the command-line contract and must not change.
const (
	ExitSuccess        = 0
	ExitSocketError    = 1
	ExitHostError      = 2
	ExitAddressError   = 3
	ExitTimeout        = 4
	ExitUnknown        = 5
	ExitBannerMismatch = 6
)

var outcomeNames = map[Outcome]string{
	Success:                         "success",
	ConnectionRefusedOrAddressError: "socket_error",
	HostResolutionOrProtocolError:   "host_error",
	AddressFamilyError:              "address_error",
	Timeout:                         "timeout",
	UnknownFailure:                  "unknown",
	BannerMismatch:                  "banner_mismatch",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// ExitCode maps the outcome to the process exit status. Values outside the
// enumeration fall back to ExitUnknown.
func (o Outcome) ExitCode() int {
	switch o {
	case Success:
		return ExitSuccess
	case ConnectionRefusedOrAddressError:
		return ExitSocketError
	case HostResolutionOrProtocolError:
		return ExitHostError
	case AddressFamilyError:
		return ExitAddressError
	case Timeout:
		return ExitTimeout
	case BannerMismatch:
		return ExitBannerMismatch
	default:
		return ExitUnknown
	}
}

func (o Outcome) Failed() bool {
	return o != Success
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

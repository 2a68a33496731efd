package vault

import (
	"errors"
	"fmt"
)

// Status is the raw result code of a vault operation. The numeric values
// follow the platform OSStatus convention so a darwin backend can pass codes
// through unchanged; other backends synthesize the matching code.
type Status int32

// Known status codes.
const (
	StatusSuccess               Status = 0
	StatusUnimplemented         Status = -4
	StatusUserCancelled         Status = -128
	StatusAuthFailed            Status = -25293
	StatusDuplicateItem         Status = -25299
	StatusItemNotFound          Status = -25300
	StatusInteractionNotAllowed Status = -25308
	StatusNotAvailable          Status = -25291
)

// Outcome is the semantic classification of a Status. Codes the taxonomy
// does not name classify as OutcomeUnknown; the raw code stays available on
// the Status itself.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeNotFound
	OutcomeDuplicateItem
	OutcomeInteractionBlocked
	OutcomeAuthenticationFailed
	OutcomeUserCancelled
	OutcomeUnknown
)

// Outcome translates the raw code into the semantic taxonomy.
func (s Status) Outcome() Outcome {
	switch s {
	case StatusSuccess:
		return OutcomeSuccess
	case StatusItemNotFound:
		return OutcomeNotFound
	case StatusDuplicateItem:
		return OutcomeDuplicateItem
	case StatusInteractionNotAllowed:
		return OutcomeInteractionBlocked
	case StatusAuthFailed:
		return OutcomeAuthenticationFailed
	case StatusUserCancelled:
		return OutcomeUserCancelled
	default:
		return OutcomeUnknown
	}
}

// IsSuccess reports whether the operation completed.
func (s Status) IsSuccess() bool { return s == StatusSuccess }

// IsNotFound reports whether the operation matched no item.
func (s Status) IsNotFound() bool { return s == StatusItemNotFound }

// IsAuthenticationFailed reports whether the vault rejected the supplied
// credentials or biometric challenge.
func (s Status) IsAuthenticationFailed() bool { return s == StatusAuthFailed }

// IsUserCancelled reports whether the user dismissed an interactive prompt.
func (s Status) IsUserCancelled() bool { return s == StatusUserCancelled }

// Semantic errors surfaced by the credential store. Expected vault outcomes
// (missing items, cancelled prompts, blocked interaction) are reported
// through these sentinels, never through panics.
var (
	ErrNotFound             = errors.New("credential not found")
	ErrDuplicateItem        = errors.New("credential already exists")
	ErrInteractionBlocked   = errors.New("interaction required but not allowed")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrUserCancelled        = errors.New("authentication cancelled by user")
)

// UnknownStatusError reports a vault status code outside the taxonomy.
type UnknownStatusError struct {
	Code Status
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unexpected vault status %d", int32(e.Code))
}

// Err maps the status onto the semantic error taxonomy. Success maps to nil;
// codes outside the taxonomy wrap the raw value in an UnknownStatusError.
func (s Status) Err() error {
	switch s.Outcome() {
	case OutcomeSuccess:
		return nil
	case OutcomeNotFound:
		return ErrNotFound
	case OutcomeDuplicateItem:
		return ErrDuplicateItem
	case OutcomeInteractionBlocked:
		return ErrInteractionBlocked
	case OutcomeAuthenticationFailed:
		return ErrAuthenticationFailed
	case OutcomeUserCancelled:
		return ErrUserCancelled
	default:
		return &UnknownStatusError{Code: s}
	}
}

// String returns the semantic name of the status, with the raw code for
// unknown values.
func (s Status) String() string {
	if s.Outcome() == OutcomeUnknown {
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
	return s.Outcome().String()
}

// String returns the lowercase label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeDuplicateItem:
		return "duplicate_item"
	case OutcomeInteractionBlocked:
		return "interaction_blocked"
	case OutcomeAuthenticationFailed:
		return "authentication_failed"
	case OutcomeUserCancelled:
		return "user_cancelled"
	default:
		return "unknown"
	}
}

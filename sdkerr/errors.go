// Package sdkerr is the one error type every SDK package returns.
//
// Account tooling mostly fails on bad input: a key of the wrong length, an
// address typed in lowercase, a date before a network existed. Those cases
// need to be told apart by code (a wallet UI highlights a field, a batch
// importer skips a row), so each failure carries a Kind for the category and
// a RuleID naming the exact check. RuleIDs are grouped by package:
// SDK-BYTES-* (bytearray), SDK-TIME-* (timestamp), SDK-NET-* (network),
// SDK-CFG-* (netconfig).
package sdkerr

import "errors"

// Kind groups failures by what the caller should do about them.
type Kind string

const (
	// KindSizeMismatch: a buffer had the wrong length for a fixed-size value.
	KindSizeMismatch Kind = "SizeMismatch"
	// KindDecode: text (hex, base32, JSON) was malformed or non-canonical.
	KindDecode Kind = "Decode"
	// KindPrecedesEpoch: an instant lies before the network epoch and has no
	// network timestamp.
	KindPrecedesEpoch Kind = "PrecedesEpoch"
	// KindUnitMismatch: a timestamp's resolution differs from the network's.
	KindUnitMismatch Kind = "UnitMismatch"
	// KindConfig: a network definition or config file is invalid.
	KindConfig Kind = "Config"
	// KindLookup: no family or network matches the requested name or id.
	KindLookup Kind = "Lookup"
)

// Error is returned by SDK operations. Message is for people; programs should
// use IsKind and RuleID. Cause, when set, is the lower-level error (a JSON
// syntax error, a failed file read) and is reachable through errors.Is/As.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New returns a structured error without a cause.
func New(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// Wrap returns a structured error carrying cause. A nil cause yields New.
func Wrap(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return New(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

func as(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// KindOf returns the Kind of the first *Error in err's chain, or "" when err
// carries none. For aggregated errors (multierr) that is the first member.
func KindOf(err error) Kind {
	if e := as(err); e != nil {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err's chain holds a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e := as(err)
	return e != nil && e.Kind == kind
}

// RuleID returns the RuleID of the first *Error in err's chain, or "".
func RuleID(err error) string {
	if e := as(err); e != nil {
		return e.RuleID
	}
	return ""
}

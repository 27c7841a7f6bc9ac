package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the fulfillment lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct production workflow.
//
// State transitions:
//
//	NotStarted ──> Printing ──> Printed ──> Done
//	     ^             ^           ^  <──────┘
//	     └─────────────┴───────────┘   (restore)
//	  (derived from printed counts)
//
// NotStarted, Printing and Printed are derived purely from per-piece
// printed counts. Done is reachable only through an explicit MarkDone
// and is left only through an explicit Restore, never through a
// progress-derived transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotStarted is the initial status: no piece has any printed progress.
	NotStarted

	// Printing indicates partial progress: some piece has printed units,
	// but not every piece has reached its full quantity.
	Printing

	// Printed indicates every piece has been printed to its full quantity.
	Printed

	// Done indicates the order has been finished and handed off.
	// It is set only by explicit user action, never derived from counts.
	Done
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		NotStarted: "NotStarted",
		Printing:   "Printing",
		Printed:    "Printed",
		Done:       "Done",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotStarted: "NotStarted",
		Printing:   "Printing",
		Printed:    "Printed",
		Done:       "Done",
	}
}

// StatusFromString parses a status from its string representation.
// It is used when reconstructing orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: NotStarted, Printing, Printed, Done.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones, which render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDerived reports whether the status is one of the progress-derived states.
// Done is the only valid status that is not derived.
func (s Status) IsDerived() bool {
	return s == NotStarted || s == Printing || s == Printed
}

// Restore transitions the status from Done back to Printed.
//
// Valid transitions:
//   - Done -> Printed
//
// Any other starting state fails with ErrInvalidTransition; the caller's
// status is left unchanged.
func (s Status) Restore() (Status, error) {
	if s != Done {
		return 0, fmt.Errorf("%w: cannot restore from %s, only from %s", ErrInvalidTransition, s, Done)
	}
	return Printed, nil
}

// deriveStatus computes the progress-derived status from two facts about the
// order's printed counts: whether any piece has progress at all, and whether
// every piece has reached its full quantity. An order with no pieces derives
// to NotStarted.
func deriveStatus(anyStarted, allComplete bool) Status {
	switch {
	case !anyStarted:
		return NotStarted
	case allComplete:
		return Printed
	default:
		return Printing
	}
}

package tour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ringtour/ring"
)

// Kind classifies input validation failures.
type Kind int

const (
	// InvalidBounds: lowest >= highest.
	InvalidBounds Kind = iota + 1
	// InitialPointOutOfBounds: initial point outside [lowest, highest].
	InitialPointOutOfBounds
	// DuplicatePoint: a value repeats in the points to visit.
	DuplicatePoint
	// PointOutOfBounds: a point to visit lies outside [lowest, highest].
	PointOutOfBounds
	// DomainTooLarge: highest-lowest+1 exceeds MaxDomainSize.
	DomainTooLarge
)

var kindMessages = map[Kind]string{
	InvalidBounds:           "lowest point must be less than highest point",
	InitialPointOutOfBounds: "initial point must be within bounds",
	DuplicatePoint:          "duplicate points found",
	PointOutOfBounds:        "point outside bounds",
	DomainTooLarge:          "board is too large",
}

// Sentinels matched by errors.Is against a *ValidationError of that Kind.
var (
	ErrInvalidBounds         = errors.New("tour: " + kindMessages[InvalidBounds])
	ErrInitialOutOfBounds    = errors.New("tour: " + kindMessages[InitialPointOutOfBounds])
	ErrDuplicatePoint        = errors.New("tour: " + kindMessages[DuplicatePoint])
	ErrPointOutOfBounds      = errors.New("tour: " + kindMessages[PointOutOfBounds])
	ErrDomainTooLarge        = errors.New("tour: " + kindMessages[DomainTooLarge])
	errUnknownValidationKind = errors.New("tour: invalid input")
)

// String returns the plain description of k.
func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}

	return "invalid input"
}

// ValidationError reports the first failed input check of Build.
type ValidationError struct {
	Kind Kind
	// Point is the offending value (initial point, duplicate or
	// out-of-range point). Unused for InvalidBounds and DomainTooLarge.
	Point int
}

// Message is the human-readable description without package prefix or
// offending value.
func (e *ValidationError) Message() string { return e.Kind.String() }

func (e *ValidationError) Error() string {
	if e.Kind == InvalidBounds || e.Kind == DomainTooLarge {
		return e.sentinel().Error()
	}

	return fmt.Sprintf("%s: %d", e.sentinel(), e.Point)
}

// Unwrap exposes the Kind sentinel (and ring.ErrInvalidBounds for bound
// failures) to errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.Kind == InvalidBounds {
		return []error{ErrInvalidBounds, ring.ErrInvalidBounds}
	}

	return []error{e.sentinel()}
}

func (e *ValidationError) sentinel() error {
	switch e.Kind {
	case InvalidBounds:
		return ErrInvalidBounds
	case InitialPointOutOfBounds:
		return ErrInitialOutOfBounds
	case DuplicatePoint:
		return ErrDuplicatePoint
	case PointOutOfBounds:
		return ErrPointOutOfBounds
	case DomainTooLarge:
		return ErrDomainTooLarge
	default:
		return errUnknownValidationKind
	}
}

package jobid

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
)

// Floor is the lowest valid job identifier. Allocation restarts here when
// there is no prior job or when the stored maximum is unreadable.
const Floor = "A0001"

const maxNumber = 9999

var (
	// ErrMalformedIdentifier is returned by Parse for strings outside the
	// [A-Z]\d{4} format. Next recovers from it by returning Floor.
	ErrMalformedIdentifier = errors.New("malformed job identifier")

	// ErrIdentifierSpaceExhausted is returned when the successor of Z9999 is requested.
	ErrIdentifierSpaceExhausted = errors.New("job identifier space exhausted")

	pattern = regexp.MustCompile(`^[A-Z][0-9]{4}$`)
)

// ID is a work-order identifier: one uppercase letter and a 4-digit number.
type ID struct {
	Letter byte
	Number int
}

// Parse validates s strictly and splits it into letter and number.
func Parse(s string) (ID, error) {
	if !pattern.MatchString(s) {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	return ID{Letter: s[0], Number: n}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and constants.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return fmt.Sprintf("%c%04d", id.Letter, id.Number)
}

// Less orders identifiers by letter, then number.
func (id ID) Less(other ID) bool {
	if id.Letter != other.Letter {
		return id.Letter < other.Letter
	}
	return id.Number < other.Number
}

// Successor returns the identifier that follows id.
// X9999 rolls over to Y0001; Z9999 has no successor.
func (id ID) Successor() (ID, error) {
	if id.Number < maxNumber {
		return ID{Letter: id.Letter, Number: id.Number + 1}, nil
	}
	if id.Letter >= 'Z' {
		return ID{}, fmt.Errorf("%w: no successor for %s", ErrIdentifierSpaceExhausted, id)
	}
	return ID{Letter: id.Letter + 1, Number: 1}, nil
}

// Next computes the identifier to assign after latest, the greatest identifier
// currently persisted. An empty latest means no jobs exist yet.
//
// Next never reads storage. Callers must make the read of latest and the write
// of the new job atomic; see storage.JobStore.CreateJob.
func Next(latest string) (ID, error) {
	if latest == "" {
		return MustParse(Floor), nil
	}

	current, err := Parse(latest)
	if err != nil {
		slog.Warn("Stored job identifier is malformed, restarting at floor",
			"latest", latest,
			"floor", Floor,
			"error", err)
		return MustParse(Floor), nil
	}

	return current.Successor()
}

package password

import (
	"fmt"
	"strings"
)

// Violation names a single rule a password failed.
type Violation uint8

const (
	Empty Violation = iota
	TooShort
	TooLong
	MissingDigit
	MissingCapital

	violationCount
)

var violationNames = [violationCount]string{
	Empty:          "empty",
	TooShort:       "too_short",
	TooLong:        "too_long",
	MissingDigit:   "missing_digit",
	MissingCapital: "missing_capital",
}

func (v Violation) String() string {
	if v >= violationCount {
		return fmt.Sprintf("violation(%d)", uint8(v))
	}
	return violationNames[v]
}

func (v Violation) MarshalText() ([]byte, error) {
	if v >= violationCount {
		return nil, fmt.Errorf("unknown violation %d", uint8(v))
	}
	return []byte(violationNames[v]), nil
}

// Violations is a set of violation kinds, one bit per kind.
type Violations uint8

// Add puts v into the set. Adding a kind twice has no effect, and unknown kinds are ignored.
func (s *Violations) Add(v Violation) {
	if v < violationCount {
		*s |= 1 << v
	}
}

// Contains reports whether v is in the set. It is false for unknown kinds.
func (s Violations) Contains(v Violation) bool {
	return v < violationCount && s&(1<<v) != 0
}

func (s Violations) IsEmpty() bool {
	return s == 0
}

func (s Violations) Len() int {
	n := 0
	for v := Violation(0); v < violationCount; v++ {
		if s.Contains(v) {
			n++
		}
	}
	return n
}

// Slice returns the kinds in the set in declaration order.
func (s Violations) Slice() []Violation {
	out := make([]Violation, 0, s.Len())
	for v := Violation(0); v < violationCount; v++ {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s Violations) String() string {
	names := make([]string, 0, s.Len())
	for _, v := range s.Slice() {
		names = append(names, v.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

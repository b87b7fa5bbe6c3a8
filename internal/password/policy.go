package password

import (
	"errors"
	"fmt"
)

// MaxPasswordLength is the largest maximum length a policy may be configured with.
const MaxPasswordLength = 255

var (
	ErrRange           = errors.New("password length out of range")
	ErrInvalidArgument = errors.New("invalid password policy argument")

	ErrMinLengthNotPositive = fmt.Errorf("%w: minimum password length cannot be zero or negative", ErrRange)
	ErrMaxLengthTooLarge    = fmt.Errorf("%w: maximum password length cannot be greater than %d", ErrRange, MaxPasswordLength)
	ErrMinGreaterThanMax    = fmt.Errorf("%w: minimum password length cannot be greater than maximum password length", ErrInvalidArgument)
)

// Policy is the set of rules a password is checked against.
// The zero value has no bounds set and rejects every non-empty password as too long.
type Policy struct {
	minLength       int
	maxLength       int
	requireDigits   bool
	requireCapitals bool
}

// NewPolicy builds a policy after checking its length bounds.
func NewPolicy(minLength, maxLength int, requireDigits, requireCapitals bool) (Policy, error) {
	if minLength <= 0 {
		return Policy{}, ErrMinLengthNotPositive
	}
	if maxLength > MaxPasswordLength {
		return Policy{}, ErrMaxLengthTooLarge
	}
	if minLength > maxLength {
		return Policy{}, ErrMinGreaterThanMax
	}

	return Policy{
		minLength:       minLength,
		maxLength:       maxLength,
		requireDigits:   requireDigits,
		requireCapitals: requireCapitals,
	}, nil
}

// Accessors for the configured rules.
func (p Policy) MinLength() int        { return p.minLength }
func (p Policy) MaxLength() int        { return p.maxLength }
func (p Policy) RequireDigits() bool   { return p.requireDigits }
func (p Policy) RequireCapitals() bool { return p.requireCapitals }

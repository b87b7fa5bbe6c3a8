package password

import (
	"unicode"
	"unicode/utf8"

	"github.com/mehmetcc/password-policy/internal/utils"
	"go.uber.org/zap"
)

// PasswordValidator is the Initialize/Validate contract implemented by Validator.
type PasswordValidator interface {
	Initialize(minLength, maxLength int, requireDigits, requireCapitals bool) error
	Validate(password *string) Outcome
}

// Validator checks passwords against the policy it was last initialized with.
// Validate is safe for concurrent use; Initialize must not run alongside it.
type Validator struct {
	policy Policy
	logger *zap.Logger
}

var _ PasswordValidator = (*Validator)(nil)

func NewValidator(logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{logger: logger}
}

// NewValidatorFromConfig returns a validator initialized with the policy loaded from the environment.
func NewValidatorFromConfig(cfg *utils.PolicyConfig, logger *zap.Logger) (*Validator, error) {
	v := NewValidator(logger)
	if err := v.Initialize(cfg.MinLength, cfg.MaxLength, cfg.RequireDigits, cfg.RequireCapitals); err != nil {
		return nil, err
	}
	return v, nil
}

// Initialize replaces the policy. On error the previous policy is kept.
func (v *Validator) Initialize(minLength, maxLength int, requireDigits, requireCapitals bool) error {
	policy, err := NewPolicy(minLength, maxLength, requireDigits, requireCapitals)
	if err != nil {
		v.logger.Error("invalid password policy",
			zap.Int("min_length", minLength),
			zap.Int("max_length", maxLength),
			zap.Error(err),
		)
		return err
	}

	v.policy = policy
	v.logger.Info("password policy initialized",
		zap.Int("min_length", minLength),
		zap.Int("max_length", maxLength),
		zap.Bool("require_digits", requireDigits),
		zap.Bool("require_capitals", requireCapitals),
	)
	return nil
}

// Policy returns the policy currently in effect.
func (v *Validator) Policy() Policy {
	return v.policy
}

// Validate checks password against the current policy. A nil password is reported as Empty.
func (v *Validator) Validate(password *string) Outcome {
	outcome := Validate(v.policy, password)
	if !outcome.IsValid() {
		v.logger.Debug("password rejected", zap.Stringer("violations", outcome.Violations()))
	}
	return outcome
}

// ValidateString is Validate for callers that always have a password.
func (v *Validator) ValidateString(password string) Outcome {
	return v.Validate(&password)
}

// Validate evaluates every rule of policy against password and collects the ones that fail.
// Length is counted in code points, so a character outside the BMP counts once,
// not twice as it would in UTF-16.
func Validate(policy Policy, password *string) Outcome {
	var violations Violations

	if password == nil {
		violations.Add(Empty)
		return Outcome{violations: violations}
	}

	length := utf8.RuneCountInString(*password)
	if length == 0 {
		violations.Add(Empty)
	}
	if length < policy.minLength {
		violations.Add(TooShort)
	}
	if length > policy.maxLength {
		violations.Add(TooLong)
	}
	if policy.requireDigits && !hasDigit(*password) {
		violations.Add(MissingDigit)
	}
	if policy.requireCapitals && !hasCapital(*password) {
		violations.Add(MissingCapital)
	}

	return Outcome{violations: violations}
}

func hasDigit(password string) bool {
	for _, c := range password {
		if unicode.IsDigit(c) {
			return true
		}
	}
	return false
}

func hasCapital(password string) bool {
	for _, c := range password {
		if unicode.IsUpper(c) {
			return true
		}
	}
	return false
}

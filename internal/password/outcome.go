package password

import "encoding/json"

// Outcome is the verdict of a single validation.
type Outcome struct {
	violations Violations
}

// IsValid reports whether the password satisfied every rule.
func (o Outcome) IsValid() bool {
	return o.violations.IsEmpty()
}

func (o Outcome) Violations() Violations {
	return o.violations
}

func (o Outcome) Has(v Violation) bool {
	return o.violations.Contains(v)
}

// Errors lists the violations found. It is empty, never nil, for a valid password.
func (o Outcome) Errors() []Violation {
	return o.violations.Slice()
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		IsValid    bool        `json:"is_valid"`
		Violations []Violation `json:"violations"`
	}{
		IsValid:    o.IsValid(),
		Violations: o.Errors(),
	})
}

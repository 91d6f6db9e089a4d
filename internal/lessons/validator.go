package lessons

import "fmt"

// Validator checks a generated batch before it is handed to a session.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages,
	// e.g. "structural", "options", "unique-ids".
	Name() string

	// Validate returns nil if the batch passes.
	Validate(questions []Question) *ValidationError
}

// ValidationError describes why a batch failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the validator chain applied to every batch.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&OptionsValidator{},
		&UniqueIDValidator{},
	}
}

// StructuralValidator checks that the batch is non-empty and that required
// text fields are present and within length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(questions []Question) *ValidationError {
	if len(questions) == 0 {
		return &ValidationError{Validator: v.Name(), Message: "no questions returned"}
	}
	for i, q := range questions {
		switch {
		case q.ID == "":
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("question %d has no id", i+1)}
		case q.Prompt == "":
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("question %q is empty", q.ID)}
		case len(q.Prompt) > 500:
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("question %q exceeds 500 characters", q.ID)}
		case len(q.Explanation) > 1000:
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("explanation of %q exceeds 1000 characters", q.ID)}
		}
	}
	return nil
}

// OptionsValidator enforces the per-question option invariant.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(questions []Question) *ValidationError {
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return &ValidationError{Validator: v.Name(), Message: err.Error()}
		}
	}
	return nil
}

// UniqueIDValidator rejects batches that reuse a question id.
type UniqueIDValidator struct{}

func (v *UniqueIDValidator) Name() string { return "unique-ids" }

func (v *UniqueIDValidator) Validate(questions []Question) *ValidationError {
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate id %q", q.ID)}
		}
		seen[q.ID] = true
	}
	return nil
}

package application

import (
	"errors"
	"fmt"

	"microfin-backoffice/pkg/nic"
)

const (
	StepIdentity = 1
	StepTerms    = 2
	StepReview   = 3

	StepCount = 3
)

var (
	ErrStepGated      = errors.New("current step has unmet required fields")
	ErrNotAtFinalStep = errors.New("submit is only allowed at the final step")
)

// StepValidator gates one step's "Next" button. Validators live with the
// step's form, not in the navigator.
type StepValidator func(f Form) error

// Navigator tracks position in an ordered 1..last step sequence. Moves
// are adjacent-only and the position is clamped at both ends.
type Navigator struct {
	current    int
	last       int
	validators map[int]StepValidator
}

func NewNavigator(last int, validators map[int]StepValidator) *Navigator {
	if last < 1 {
		last = 1
	}
	return &Navigator{current: 1, last: last, validators: validators}
}

func (n *Navigator) Current() int { return n.current }

// Restore positions the navigator at a previously saved step, clamped
// into range.
func (n *Navigator) Restore(step int) {
	if step < 1 {
		step = 1
	}
	if step > n.last {
		step = n.last
	}
	n.current = step
}

// Next advances one step if the current step's validator passes. At the
// last step it validates but does not move; use CanSubmit there.
func (n *Navigator) Next(f Form) error {
	if err := n.validate(n.current, f); err != nil {
		return err
	}
	if n.current < n.last {
		n.current++
	}
	return nil
}

// Previous moves back one step; a no-op at step 1.
func (n *Navigator) Previous() {
	if n.current > 1 {
		n.current--
	}
}

// CanSubmit reports whether the form may be submitted: only at the last
// step, and only when that step validates.
func (n *Navigator) CanSubmit(f Form) error {
	if n.current != n.last {
		return ErrNotAtFinalStep
	}
	return n.validate(n.last, f)
}

func (n *Navigator) validate(step int, f Form) error {
	v, ok := n.validators[step]
	if !ok || v == nil {
		return nil
	}
	if err := v(f); err != nil {
		return fmt.Errorf("%w: %v", ErrStepGated, err)
	}
	return nil
}

// DefaultStepValidators is the standard three-step gating: identity,
// loan terms, then a full review.
func DefaultStepValidators() map[int]StepValidator {
	identity := func(f Form) error {
		if !nic.Valid(f.NIC) {
			return errors.New("NIC is missing or malformed")
		}
		return nil
	}
	terms := func(f Form) error {
		if f.Amount <= 0 {
			return errors.New("loan amount must be positive")
		}
		if f.ProcessingFee < 0 || f.DocumentationFee < 0 || f.InsuranceFee < 0 {
			return errors.New("fees must not be negative")
		}
		return nil
	}
	return map[int]StepValidator{
		StepIdentity: identity,
		StepTerms:    terms,
		StepReview: func(f Form) error {
			if err := identity(f); err != nil {
				return err
			}
			return terms(f)
		},
	}
}

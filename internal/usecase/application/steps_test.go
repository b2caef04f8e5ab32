package application

import (
	"errors"
	"testing"
)

func validForm() Form {
	return Form{
		NIC:              "851234567V",
		Amount:           100_000,
		ProcessingFee:    1_000,
		DocumentationFee: 500,
	}
}

func TestNavigator_WalksForwardAndBack(t *testing.T) {
	n := NewNavigator(StepCount, DefaultStepValidators())
	f := validForm()

	if n.Current() != 1 {
		t.Fatalf("start = %d, want 1", n.Current())
	}
	if err := n.Next(f); err != nil {
		t.Fatalf("Next from 1: %v", err)
	}
	if err := n.Next(f); err != nil {
		t.Fatalf("Next from 2: %v", err)
	}
	if n.Current() != 3 {
		t.Fatalf("current = %d, want 3", n.Current())
	}
	n.Previous()
	if n.Current() != 2 {
		t.Fatalf("current = %d, want 2", n.Current())
	}
}

func TestNavigator_PreviousAtFirstStepIsNoop(t *testing.T) {
	n := NewNavigator(StepCount, nil)
	n.Previous()
	n.Previous()
	if n.Current() != 1 {
		t.Fatalf("current = %d, want 1", n.Current())
	}
}

func TestNavigator_NextAtLastStepStaysInRange(t *testing.T) {
	n := NewNavigator(StepCount, DefaultStepValidators())
	f := validForm()
	for i := 0; i < 5; i++ {
		if err := n.Next(f); err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
	}
	if n.Current() != StepCount {
		t.Fatalf("current = %d, want %d", n.Current(), StepCount)
	}
}

func TestNavigator_NextGatedByStepValidator(t *testing.T) {
	n := NewNavigator(StepCount, DefaultStepValidators())

	err := n.Next(Form{NIC: "not-a-nic"})
	if !errors.Is(err, ErrStepGated) {
		t.Fatalf("Next with bad NIC = %v, want ErrStepGated", err)
	}
	if n.Current() != 1 {
		t.Fatalf("gated Next moved the step: %d", n.Current())
	}
}

func TestNavigator_SubmitOnlyAtFinalStep(t *testing.T) {
	n := NewNavigator(StepCount, DefaultStepValidators())
	f := validForm()

	if err := n.CanSubmit(f); !errors.Is(err, ErrNotAtFinalStep) {
		t.Fatalf("CanSubmit at step 1 = %v, want ErrNotAtFinalStep", err)
	}

	_ = n.Next(f)
	_ = n.Next(f)
	if err := n.CanSubmit(f); err != nil {
		t.Fatalf("CanSubmit at final step: %v", err)
	}

	bad := f
	bad.Amount = 0
	if err := n.CanSubmit(bad); !errors.Is(err, ErrStepGated) {
		t.Fatalf("CanSubmit with bad form = %v, want ErrStepGated", err)
	}
}

func TestNavigator_RestoreClamps(t *testing.T) {
	n := NewNavigator(StepCount, nil)
	n.Restore(99)
	if n.Current() != StepCount {
		t.Fatalf("Restore(99) = %d, want %d", n.Current(), StepCount)
	}
	n.Restore(-4)
	if n.Current() != 1 {
		t.Fatalf("Restore(-4) = %d, want 1", n.Current())
	}
}

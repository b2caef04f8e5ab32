package approval

import (
	"testing"
	"time"
)

func TestSecondStageFor_Threshold(t *testing.T) {
	cases := []struct {
		amount float64
		want   StageState
	}{
		{50_000, StageNotApplicable},
		{200_000, StageNotApplicable}, // at the threshold, not above it
		{200_000.01, StagePending},
		{500_000, StagePending},
	}
	for _, tc := range cases {
		if got := SecondStageFor(tc.amount); got != tc.want {
			t.Fatalf("SecondStageFor(%v) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	at := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	if IsOverdue(at, at.Add(59*time.Minute)) {
		t.Fatal("59 minutes reported overdue")
	}
	if IsOverdue(at, at.Add(60*time.Minute)) {
		t.Fatal("exactly 1 hour reported overdue (rule is strictly more than)")
	}
	if !IsOverdue(at, at.Add(61*time.Minute)) {
		t.Fatal("61 minutes not reported overdue")
	}
}

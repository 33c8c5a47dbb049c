package statistics

import (
	"errors"
	"math"
	"testing"
)

func TestChiSquareIndependence_IdenticalRows(t *testing.T) {
	table := []PassFail{
		{Model: "a", Passed: 30, Failed: 58},
		{Model: "b", Passed: 30, Failed: 58},
	}
	res, err := ChiSquareIndependence(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Statistic > 1e-9 {
		t.Errorf("identical rows should give a statistic near 0, got %f", res.Statistic)
	}
	if res.PValue < 0.999 {
		t.Errorf("identical rows should give p ~1, got %f", res.PValue)
	}
	if res.DF != 1 {
		t.Errorf("expected df=1 for 2 models, got %d", res.DF)
	}
	if res.Significance != "ns" {
		t.Errorf("expected ns label, got %q", res.Significance)
	}
}

func TestChiSquareIndependence_StrongDifference(t *testing.T) {
	table := []PassFail{
		{Model: "a", Passed: 61, Failed: 27},
		{Model: "b", Passed: 13, Failed: 75},
	}
	res, err := ChiSquareIndependence(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PValue >= 0.001 {
		t.Errorf("expected p < 0.001 for a strong difference, got %f", res.PValue)
	}
	if res.Significance != "***" {
		t.Errorf("expected *** label, got %q", res.Significance)
	}
	// Hand-computed statistic for this table is ~53.7.
	if math.Abs(res.Statistic-53.7) > 0.5 {
		t.Errorf("expected statistic ~53.7, got %f", res.Statistic)
	}
}

func TestChiSquareIndependence_DegreesOfFreedom(t *testing.T) {
	table := []PassFail{
		{Model: "a", Passed: 10, Failed: 5},
		{Model: "b", Passed: 8, Failed: 7},
		{Model: "c", Passed: 3, Failed: 12},
		{Model: "d", Passed: 6, Failed: 9},
	}
	res, err := ChiSquareIndependence(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DF != 3 {
		t.Errorf("expected df=3 for 4 models, got %d", res.DF)
	}
}

func TestChiSquareIndependence_ZeroTrialRowRejected(t *testing.T) {
	table := []PassFail{
		{Model: "a", Passed: 10, Failed: 5},
		{Model: "b", Passed: 0, Failed: 0},
	}
	_, err := ChiSquareIndependence(table)
	if !errors.Is(err, ErrNoTrials) {
		t.Fatalf("expected ErrNoTrials, got %v", err)
	}
}

func TestChiSquareIndependence_TooFewRows(t *testing.T) {
	_, err := ChiSquareIndependence([]PassFail{{Model: "a", Passed: 1, Failed: 1}})
	if err == nil {
		t.Fatal("expected an error for a single-row table")
	}
}

func TestSignificanceLabel(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{0.0001, "***"},
		{0.005, "**"},
		{0.02, "*"},
		{0.05, "ns"},
		{0.5, "ns"},
	}
	for _, tc := range cases {
		if got := SignificanceLabel(tc.p); got != tc.want {
			t.Errorf("SignificanceLabel(%f) = %q, want %q", tc.p, got, tc.want)
		}
	}
}

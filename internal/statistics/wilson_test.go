package statistics

import (
	"math"
	"testing"
)

func TestWilsonInterval_ZeroTrials(t *testing.T) {
	iv := WilsonInterval(0, 0, 0.95)
	if iv.Rate != 0 || iv.Lower != 0 || iv.Upper != 0 {
		t.Errorf("expected degenerate (0,0,0) interval for zero trials, got %+v", iv)
	}
	if iv.ConfidenceLevel != 0.95 {
		t.Errorf("expected confidence level 0.95, got %f", iv.ConfidenceLevel)
	}
}

func TestWilsonInterval_KnownValue(t *testing.T) {
	// 61/88 at 95% should give roughly [0.590, 0.780] around 0.693.
	iv := WilsonInterval(61, 88, 0.95)
	if math.Abs(iv.Rate-61.0/88.0) > 1e-12 {
		t.Errorf("expected rate %f, got %f", 61.0/88.0, iv.Rate)
	}
	if math.Abs(iv.Lower-0.590) > 0.005 {
		t.Errorf("expected lower ~0.590, got %f", iv.Lower)
	}
	if math.Abs(iv.Upper-0.780) > 0.005 {
		t.Errorf("expected upper ~0.780, got %f", iv.Upper)
	}
}

func TestWilsonInterval_BoundsOrdering(t *testing.T) {
	cases := []struct {
		successes, trials int
	}{
		{0, 1}, {1, 1}, {0, 50}, {50, 50}, {1, 2}, {13, 88}, {44, 50}, {999, 1000},
	}
	for _, tc := range cases {
		iv := WilsonInterval(tc.successes, tc.trials, 0.95)
		if iv.Lower < 0 || iv.Upper > 1 {
			t.Errorf("%d/%d: bounds [%f, %f] escape [0,1]", tc.successes, tc.trials, iv.Lower, iv.Upper)
		}
		if iv.Lower > iv.Rate || iv.Rate > iv.Upper {
			t.Errorf("%d/%d: rate %f outside interval [%f, %f]", tc.successes, tc.trials, iv.Rate, iv.Lower, iv.Upper)
		}
	}
}

func TestWilsonInterval_NarrowerAtHigherN(t *testing.T) {
	small := WilsonInterval(7, 10, 0.95)
	large := WilsonInterval(700, 1000, 0.95)
	if large.Upper-large.Lower >= small.Upper-small.Lower {
		t.Errorf("larger sample should narrow the interval: small=%f, large=%f",
			small.Upper-small.Lower, large.Upper-large.Lower)
	}
}

func TestWilsonInterval_HigherConfidenceIsWider(t *testing.T) {
	ci95 := WilsonInterval(30, 88, 0.95)
	ci99 := WilsonInterval(30, 88, 0.99)
	if ci99.Upper-ci99.Lower <= ci95.Upper-ci95.Lower {
		t.Errorf("99%% interval should be wider than 95%%: 95=%f, 99=%f",
			ci95.Upper-ci95.Lower, ci99.Upper-ci99.Lower)
	}
}

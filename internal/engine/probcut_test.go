package engine

import "testing"

func TestProbCutMarginGrowsWithDepthGap(t *testing.T) {
	shallow := probCutMargin(0, 2)
	deep := probCutMargin(0, 6)
	if deep <= shallow {
		t.Errorf("expected margin to grow with depth gap: shallow=%d deep=%d", shallow, deep)
	}
}

func TestProbCutMarginAtNoSelectivityIsUnreachable(t *testing.T) {
	margin := probCutMargin(NoSelectivity, 4)
	if margin < Infinity {
		t.Errorf("expected NoSelectivity's margin to be unreachably large, got %d", margin)
	}
}

func TestProbCutShallowDepthHalvesAndFloors(t *testing.T) {
	if d := probCutShallowDepth(10); d != 5 {
		t.Errorf("expected depth 10 to shallow to 5, got %d", d)
	}
	if d := probCutShallowDepth(1); d != 1 {
		t.Errorf("expected depth 1 to floor at 1, got %d", d)
	}
}

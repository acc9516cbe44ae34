package engine

import "math"

// probCutT holds, per selectivity band, the number of standard deviations
// a shallow search's score must clear a bound by before the bound is
// accepted without a full-depth search. Index NoSelectivity disables
// ProbCut entirely (an exact search is required).
//
// original_source's search pipeline derives this table from an offline
// regression over (ply, shallow_depth, deep_depth) -> score-difference
// samples (see datagen/src/probcut.rs, which only *collects* the training
// data and does not itself embed the resulting coefficients — the fitted
// table lives outside the code this engine was distilled from). In its
// absence this engine uses the widely published Edax/Logistello selectivity
// ladder, a standard geometric progression of z-scores used by the same
// class of ProbCut implementation; recalibrating these against this
// evaluator's own score distribution is future tuning work, not a
// correctness requirement.
var probCutT = [NumSelectivityLevels]float64{
	1.00, 1.50, 2.00, 2.60, 3.30, 3.90, math.MaxFloat64,
}

// probCutSigmaPerPly is the assumed per-ply standard deviation (in Score
// units) of the difference between a shallow and a full-depth search.
// sigma grows with the square root of the depth gap, the usual diffusion
// assumption for a sum of roughly-independent per-ply score perturbations.
const probCutSigmaPerPly Score = 40

// probCutMargin returns the score margin a shallow search must clear a
// bound by, for the given selectivity and the ply gap between the shallow
// and full-depth searches being substituted for one another.
func probCutMargin(selectivity int, depthGap int) Score {
	if selectivity >= NoSelectivity || depthGap <= 0 {
		return Infinity
	}
	sigma := float64(probCutSigmaPerPly) * math.Sqrt(float64(depthGap))
	return Score(probCutT[selectivity] * sigma)
}

// probCutShallowDepth picks the reduced depth to verify a cutoff at. Edax's
// convention of roughly halving the remaining depth (floored, minimum 1)
// keeps the shallow probe cheap while still correlating well with the full
// search.
func probCutShallowDepth(depth int) int {
	d := depth / 2
	if d < 1 {
		d = 1
	}
	return d
}

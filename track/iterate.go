package track

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/affinetrack/jacobian"
	"github.com/katalvlaran/affinetrack/matrix"
	"github.com/katalvlaran/affinetrack/matrix/ops"
	"github.com/katalvlaran/affinetrack/raster"
	"github.com/katalvlaran/affinetrack/telemetry"
	"github.com/katalvlaran/affinetrack/warp"
)

// Track advances the Tracker by one frame:
//
//  1. the Tracker's current image is promoted to template, newFrame is
//     stored as the new current image, and the BBox's patch is extracted
//     from the (now promoted) template once;
//  2. the Jacobian (steepest-descent images) is built once over the
//     template, since it is constant across the Gauss-Newton iterations
//     of the inverse-compositional formulation;
//  3. newFrame is resampled at W·x for the running estimate W (W maps
//     template coordinates into newFrame), re-sampled over the BBox grid,
//     and compared against the template patch to form the residual e;
//  4. the normal equations H·Δp = b are assembled (weighted by Weights,
//     default identity) and solved via Cholesky;
//  5. W is updated by composing it with the inverse of the incremental
//     warp M(Δp), per the inverse-compositional update rule;
//  6. the loop repeats until ‖Δp‖₂ < threshold, maxIters is reached, or
//     the Hessian is singular.
//
// threshold <= 0 and maxIters <= 0 fall back to the Tracker's configured
// defaults (DefaultThreshold, DefaultMaxIterations, or whatever
// WithThreshold/WithMaxIterations installed). On return, the Tracker's
// BBox has been propagated through the final W, its template image is
// the frame that was current before this call, and its current image is
// newFrame.
func (t *Tracker) Track(newFrame *raster.Image, threshold float64, maxIters int) (telemetry.Report, error) {
	var report telemetry.Report

	if newFrame.Empty() {
		return report, fmt.Errorf("Tracker.Track: %w", raster.ErrEmptyImage)
	}
	if t.state != Ready {
		return report, ErrNotReady
	}
	if threshold <= 0 {
		threshold = t.threshold
	}
	if maxIters <= 0 {
		maxIters = t.maxIters
	}

	t.state = Tracking
	defer func() { t.state = Ready }()

	bbox, _ := t.BBox()
	if err := bbox.Valid(); err != nil {
		return report, fmt.Errorf("Tracker.Track: %w", err)
	}

	template := t.current
	t.template = template
	t.current = newFrame
	nx, ny, dx, dy := bbox.Grid()

	tPatch, err := raster.Rect(template, bbox.X0, bbox.Y0, dx, dy, nx, ny)
	if err != nil {
		return report, fmt.Errorf("Tracker.Track: template patch: %w", err)
	}
	tFlat := flatten(tPatch)

	jac, err := jacobian.Build(template, bbox)
	if err != nil {
		return report, fmt.Errorf("Tracker.Track: %w", err)
	}

	weightsFn := t.weights
	if weightsFn == nil {
		weightsFn = identityWeights
	}

	w := warp.Identity()
	var lastResidualNorm float64

	for iter := 0; iter < maxIters; iter++ {
		// warp.Warp inverts its matrix, so passing W⁻¹ samples newFrame at W·x.
		wInv, err := w.Inverse()
		if err != nil {
			return report, fmt.Errorf("Tracker.Track: %w", err)
		}
		warped, err := warp.Warp(newFrame, wInv)
		if err != nil {
			return report, fmt.Errorf("Tracker.Track: %w", err)
		}

		curPatch, err := raster.Rect(warped, bbox.X0, bbox.Y0, dx, dy, nx, ny)
		if err != nil {
			return report, fmt.Errorf("Tracker.Track: current patch: %w", err)
		}
		curFlat := flatten(curPatch)

		e := make([]float64, len(tFlat))
		for i := range e {
			e[i] = curFlat[i] - tFlat[i]
		}
		lastResidualNorm = l2Norm(e)

		weights := weightsFn(e)
		weightedE := make([]float64, len(e))
		for i := range e {
			weightedE[i] = weights[i] * e[i]
		}

		dj, err := matrix.ScaleRows(jac.J(), weights)
		if err != nil {
			return report, fmt.Errorf("Tracker.Track: %w", err)
		}
		h, err := matrix.Mul(jac.JT(), dj)
		if err != nil {
			return report, fmt.Errorf("Tracker.Track: %w", err)
		}
		b, err := matrix.MulVec(jac.JT(), weightedE)
		if err != nil {
			return report, fmt.Errorf("Tracker.Track: %w", err)
		}

		dp, err := ops.SolveSPD(h, b)
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				report.SingularHit = true
				report.FinalResidualNorm = lastResidualNorm
				t.bbox = warp.PropagateBBox(bbox, w)

				return report, fmt.Errorf("Tracker.Track: %w", ErrSingular)
			}

			return report, fmt.Errorf("Tracker.Track: %w", err)
		}

		var dpArr [6]float64
		copy(dpArr[:], dp)
		stepNorm := l2Norm(dp)
		report.StepNorms = append(report.StepNorms, stepNorm)
		report.Iterations++

		m := warp.FromParams(dpArr)
		mInv, err := m.Inverse()
		if err != nil {
			report.FinalResidualNorm = lastResidualNorm
			t.bbox = warp.PropagateBBox(bbox, w)

			return report, fmt.Errorf("Tracker.Track: composing incremental warp: %w", err)
		}
		w = w.Mul(mInv)

		if stepNorm < threshold {
			report.Converged = true

			break
		}
	}

	report.FinalResidualNorm = lastResidualNorm
	t.bbox = warp.PropagateBBox(bbox, w)

	return report, nil
}

// flatten reads img (row-major) into a freshly allocated []float64.
func flatten(img *raster.Image) []float64 {
	rows, cols := img.Rows(), img.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j] = img.AtFast(i, j)
		}
	}

	return out
}

// identityWeights is the default Weights: every observation weighted 1.
func identityWeights(residual []float64) []float64 {
	w := make([]float64, len(residual))
	for i := range w {
		w[i] = 1
	}

	return w
}

// l2Norm returns the Euclidean norm of v.
func l2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

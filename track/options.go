package track

import (
	"math"

	"github.com/katalvlaran/affinetrack/raster"
	"github.com/katalvlaran/affinetrack/warp"
)

// DefaultThreshold is the convergence threshold τ used when a caller
// passes threshold <= 0 to Track.
const DefaultThreshold = 0.01875

// DefaultMaxIterations is the iteration cap K used when a caller passes
// maxIters <= 0 to Track.
const DefaultMaxIterations = 100

// Weights computes the diagonal of the per-pixel weight matrix D from
// the current residual vector, an optional robust-weighting hook. The
// returned slice must have the same length as residual; the default
// (nil Weights) is the identity (every weight 1).
type Weights func(residual []float64) []float64

// Option configures a Tracker at construction time, following the
// functional-options idiom used throughout this module.
type Option func(*Tracker)

// WithTemplateImage seeds the Tracker's template image slot, as if
// SetTemplateImage had been called right after construction.
func WithTemplateImage(img *raster.Image) Option {
	return func(t *Tracker) { t.template = img }
}

// WithCurrentImage seeds the Tracker's current (most-recently-tracked)
// image slot, as if SetCurrentImage had been called right after
// construction.
func WithCurrentImage(img *raster.Image) Option {
	return func(t *Tracker) { t.current = img }
}

// WithBBox seeds the Tracker's bounding box.
func WithBBox(b warp.BBox) Option {
	return func(t *Tracker) { t.bbox = b; t.bboxSet = true }
}

// WithThreshold sets the default convergence threshold used by Track
// whenever it is called with threshold <= 0.
func WithThreshold(tau float64) Option {
	return func(t *Tracker) { t.threshold = tau }
}

// WithMaxIterations sets the default iteration cap used by Track
// whenever it is called with maxIters <= 0.
func WithMaxIterations(k int) Option {
	return func(t *Tracker) { t.maxIters = k }
}

// WithWeights installs a custom per-iteration weighting callback. The
// default is the identity (nil Weights, every observation weighted 1).
func WithWeights(w Weights) Option {
	return func(t *Tracker) { t.weights = w }
}

// Huber returns a Weights implementing Huber's robust loss with scale
// delta: residuals within delta are weighted 1; larger residuals are
// down-weighted as delta/|r|.
func Huber(delta float64) Weights {
	return func(residual []float64) []float64 {
		w := make([]float64, len(residual))
		for i, r := range residual {
			a := math.Abs(r)
			if a <= delta {
				w[i] = 1
			} else {
				w[i] = delta / a
			}
		}

		return w
	}
}

// Tukey returns a Weights implementing Tukey's biweight with scale c:
// residuals beyond c are weighted 0.
func Tukey(c float64) Weights {
	return func(residual []float64) []float64 {
		w := make([]float64, len(residual))
		for i, r := range residual {
			u := r / c
			if math.Abs(u) >= 1 {
				w[i] = 0
				continue
			}
			t := 1 - u*u
			w[i] = t * t
		}

		return w
	}
}

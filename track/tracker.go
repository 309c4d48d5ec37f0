package track

import (
	"fmt"

	"github.com/katalvlaran/affinetrack/raster"
	"github.com/katalvlaran/affinetrack/warp"
)

// Tracker is the stateful single-object affine tracker facade. It holds
// the object's bounding box and two distinct, independently owned
// images: template (the previous frame) and current (the latest frame).
// Track promotes current to template and stores the new frame as
// current at the start of every call; outside of Track, the two fields
// are changed only by their own setters, never by aliasing one from the
// other. A zero Tracker is Uninitialized; use New to obtain one with
// sane defaults applied.
type Tracker struct {
	bbox    warp.BBox
	bboxSet bool

	template *raster.Image
	current  *raster.Image

	state State

	weights   Weights
	threshold float64
	maxIters  int
}

// New constructs a Tracker with the default threshold and iteration cap,
// then applies opts in order.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		threshold: DefaultThreshold,
		maxIters:  DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.refreshState()

	return t
}

// refreshState recomputes t.state from t.bboxSet and t.current (Track's
// precondition is a BBox and a previous frame, i.e. the current image;
// the template is derived from it at the start of each call). It never
// downgrades out of Tracking; Track clears Tracking itself (via a deferred
// reset to Ready) once a call completes.
func (t *Tracker) refreshState() {
	if t.state == Tracking {
		return
	}
	if t.bboxSet && t.current != nil {
		t.state = Ready
	} else {
		t.state = Uninitialized
	}
}

// State reports the Tracker's current lifecycle position.
func (t *Tracker) State() State {
	return t.state
}

// BBox returns the Tracker's current bounding box and whether one has
// been set yet.
func (t *Tracker) BBox() (warp.BBox, bool) {
	return t.bbox, t.bboxSet
}

// SetBBox validates b and installs it as the Tracker's current bounding
// box.
func (t *Tracker) SetBBox(b warp.BBox) error {
	if err := b.Valid(); err != nil {
		return fmt.Errorf("Tracker.SetBBox: %w", err)
	}
	t.bbox = b
	t.bboxSet = true
	t.refreshState()

	return nil
}

// TemplateImage returns the Tracker's template image, or nil if none has
// been set yet (it is only populated once Track has run, or by an
// explicit SetTemplateImage / WithTemplateImage).
func (t *Tracker) TemplateImage() *raster.Image {
	return t.template
}

// SetTemplateImage installs img as the Tracker's template image
// directly. It does not touch the current image; ordinarily the
// template is instead derived by Track promoting the previous current
// image, so this setter is for seeding or resetting a Tracker outside
// the normal Track flow.
func (t *Tracker) SetTemplateImage(img *raster.Image) error {
	if img.Empty() {
		return fmt.Errorf("Tracker.SetTemplateImage: %w", raster.ErrEmptyImage)
	}
	t.template = img

	return nil
}

// CurrentImage returns the Tracker's current image, or nil if none has
// been set.
func (t *Tracker) CurrentImage() *raster.Image {
	return t.current
}

// SetCurrentImage installs img as the Tracker's current image. It does
// not touch the template image.
func (t *Tracker) SetCurrentImage(img *raster.Image) error {
	if img.Empty() {
		return fmt.Errorf("Tracker.SetCurrentImage: %w", raster.ErrEmptyImage)
	}
	t.current = img
	t.refreshState()

	return nil
}

// Threshold returns the convergence threshold τ used by Track when
// called with threshold <= 0.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// MaxIterations returns the iteration cap K used by Track when called
// with maxIters <= 0.
func (t *Tracker) MaxIterations() int {
	return t.maxIters
}

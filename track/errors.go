package track

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/affinetrack/matrix"
)

// ErrSingular indicates the Gauss-Newton Hessian Jᵀ·D·J was non-invertible
// to working precision on some iteration. It wraps matrix.ErrSingular so
// callers can match either sentinel via errors.Is. This is a rare runtime
// condition, not a precondition failure: the driver commits the warp
// estimate as of the previous iteration and returns normally from Track's
// perspective, but ErrSingular is still surfaced as the returned error so
// the caller can distinguish "stopped early on a degenerate template"
// from ordinary convergence or cap exhaustion.
var ErrSingular = fmt.Errorf("track: hessian is singular: %w", matrix.ErrSingular)

// ErrNotReady is returned by Track when called on a Tracker that has no
// valid BBox and/or no current image set yet (state Uninitialized). The
// current image is the previous frame Track will warp the next frame
// toward; callers must establish both via SetBBox and SetCurrentImage
// (or the WithBBox/WithCurrentImage options) before the first Track call.
var ErrNotReady = errors.New("track: tracker not ready: bbox and current image required")

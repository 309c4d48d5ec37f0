// Package track implements the Baker-Matthews Inverse Compositional
// affine tracker's facade (Tracker) and its per-frame iteration driver
// (Track). A Tracker holds a bounding box, a template image, and the
// most recently tracked frame as two distinct, independently settable
// fields; Track advances it by one frame, warping the new frame toward
// the template, solving the Gauss-Newton normal equations each
// iteration, and composing the warp inverse until convergence or the
// iteration cap.
package track

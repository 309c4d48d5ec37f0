// Package warp provides the affine warp representation (Matrix3), the
// axis-aligned bounding box the tracker persists between frames (BBox),
// whole-image affine warping (Warp), and propagation of a BBox through a
// warp (PropagateBBox).
//
// Matrix3 is a fixed [3][3]float64 rather than a matrix.Dense: its shape
// never varies, so a generic Dense would only add bounds-checking
// overhead to the tightest loop in the package (Warp samples it once per
// destination pixel).
package warp

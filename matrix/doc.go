// Package matrix provides core linear algebra primitives for array-based
// computations: a row-major Dense matrix type and transpose, product and
// row-scaling operations over the Matrix interface.
//
// Dense is the only concrete implementation shipped here. It favours a
// flat backing slice over nested slices for cache-friendly row access,
// which matters for the steepest-descent products computed by
// github.com/katalvlaran/affinetrack/jacobian and
// github.com/katalvlaran/affinetrack/track.
package matrix

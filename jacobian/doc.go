// Package jacobian assembles the steepest-descent matrix J and its
// transpose from a template image and a bounding box. J depends only on
// the template and the BBOX, which is the essence of the
// inverse-compositional formulation: it is built once per call to
// track.Tracker.Track and reused across every inner iteration.
package jacobian

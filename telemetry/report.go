package telemetry

// Report summarizes a single call to track.Tracker.Track.
type Report struct {
	// Iterations is the number of inner IC iterations actually performed
	// (<= the caller's maxIters).
	Iterations int

	// Converged is true when the loop exited because the step norm fell
	// below the caller's threshold, false when it exhausted maxIters or
	// hit a singular Hessian.
	Converged bool

	// SingularHit is true when the Gauss-Newton Hessian was non-invertible
	// on some iteration; the driver committed the warp estimate as of the
	// previous iteration and stopped.
	SingularHit bool

	// FinalResidualNorm is the L2 norm of the pixel error vector e on the
	// last iteration performed.
	FinalResidualNorm float64

	// StepNorms holds ‖Δp‖₂ for every iteration performed, in order.
	StepNorms []float64
}

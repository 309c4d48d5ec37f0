// Package telemetry carries per-call diagnostics out of the IC iteration
// driver without influencing its control flow: iteration count, final
// residual norm, convergence reason, and the per-iteration step norms are
// a plain data value returned alongside the operation's error, never
// consulted to decide anything.
package telemetry

package track

// State enumerates a Tracker's lifecycle position. There is no terminal
// state.
type State int

const (
	// Uninitialized means no BBox and/or no current image is set yet.
	Uninitialized State = iota
	// Ready means a BBox and a current image (the previous frame) are
	// present; Track may be called.
	Ready
	// Tracking means a call to Track is in progress on this instance.
	// Calling Track again concurrently from another goroutine while in
	// this state is undefined: Tracker is not reentrant.
	Tracking
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case Tracking:
		return "Tracking"
	default:
		return "Unknown"
	}
}

package port

// Random supplies the randomized durations and display values.
type Random interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

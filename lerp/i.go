package lerp

// Lerpable is implemented by values that can be blended toward another value
// of the same type. t is expected in [0, 1]; values outside that range are
// evaluated with the same formula and are not clamped.
type Lerpable[T any] interface {
	Lerp(other T, t float64) T
}

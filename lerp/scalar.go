package lerp

import "strconv"

// Float linearly interpolates from a to b by t.
func Float(a, b, t float64) float64 {
	return (b-a)*t + a
}

// Scalar is the plain number variant of Lerpable.
type Scalar float64

func (s Scalar) Lerp(other Scalar, t float64) Scalar {
	return Scalar(Float(float64(s), float64(other), t))
}

func (s Scalar) Float64() float64 {
	return float64(s)
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

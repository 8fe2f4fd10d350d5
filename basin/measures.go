package basin

import "math"

// Shape is the Gravelius compactness class of a basin.
type Shape int

// Compactness classes, by Gravelius coefficient Kc.
const (
	ShapeRound       Shape = iota // Kc < 1.25
	ShapeOvalRound                // 1.25 <= Kc < 1.5
	ShapeOvalOblong               // 1.5 <= Kc < 1.75
	ShapeRectangular              // Kc >= 1.75
)

func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round to oval-round"
	case ShapeOvalRound:
		return "oval-round to oval-oblong"
	case ShapeOvalOblong:
		return "oval-oblong to rectangular-oblong"
	case ShapeRectangular:
		return "rectangular-oblong"
	}

	return "unknown"
}

// Gravelius returns the compactness coefficient Kc = P / (2·√(π·A)), the
// ratio of the perimeter to that of a circle of equal area. It is 1 for a
// circle and grows with elongation. A non-positive area yields 0.
func Gravelius(perimeter, area float64) float64 {
	if area <= 0 {
		return 0
	}

	return perimeter / (2 * math.Sqrt(math.Pi*area))
}

// ClassifyShape maps a Gravelius coefficient to its class.
func ClassifyShape(kc float64) Shape {
	switch {
	case kc < 1.25:
		return ShapeRound
	case kc < 1.5:
		return ShapeOvalRound
	case kc < 1.75:
		return ShapeOvalOblong
	}

	return ShapeRectangular
}

// EquivalentRectangle returns the sides of the rectangle with the same
// perimeter and area, the roots of x² − (P/2)·x + A = 0 with length >= width.
// The linear coefficient is the semi-perimeter P/2 because it equals the sum
// of the two sides (P = 2·(L + W)); the form x² − P·x + A would describe a
// rectangle of twice the perimeter. ok is false when the discriminant is negative, i.e. when no rectangle can
// match both measures.
func EquivalentRectangle(perimeter, area float64) (length, width float64, ok bool) {
	half := perimeter / 2
	disc := half*half - 4*area
	if disc < 0 || area <= 0 {
		return 0, 0, false
	}
	r := math.Sqrt(disc)

	return (half + r) / 2, (half - r) / 2, true
}

// ConcentrationTime estimates the time of concentration in hours from the
// longest flow path in kilometres and the relief in metres (California
// Culverts Practice): Tc = (0.87·L³ / H)^0.385. It returns -1 when relief is
// not positive.
func ConcentrationTime(lengthKm, relief float64) float64 {
	if relief <= 0 {
		return -1
	}

	return math.Pow(0.87*lengthKm*lengthKm*lengthKm/relief, 0.385)
}

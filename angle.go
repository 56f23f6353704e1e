package pathwalk

import (
	"fmt"
	"math"
)

// Angle is a direction in radians. Zero points along the positive x axis, and
// π/2 along the positive y axis. In a y-down coordinate system, as is common
// for graphics, positive angles rotate clockwise.
type Angle float64

// FromDegrees returns the angle of d degrees.
func FromDegrees(d float64) Angle {
	return Angle(d * math.Pi / 180)
}

func (a Angle) Radians() float64 {
	return float64(a)
}

func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

func (a Angle) String() string {
	return fmt.Sprintf("%gπ", float64(a)/math.Pi)
}

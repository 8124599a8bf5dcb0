package kdtree

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ChooseAxis returns the axis along which points are most spread out.
//
// Spread is the sum of squared deviations from the mean. Spreads within
// Tolerance of the maximum are resolved in the order x, y, z. An empty slice
// yields AxisX.
func ChooseAxis(points []Point) Axis {
	if len(points) == 0 {
		return AxisX
	}

	buf := make([]float64, len(points))
	var spread [3]float64
	for _, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		for i, p := range points {
			buf[i] = p.Coord(a)
		}
		mean := stat.Mean(buf, nil)
		var ss float64
		for _, v := range buf {
			d := v - mean
			ss += d * d
		}
		spread[a] = ss
	}

	top := math.Max(spread[AxisX], math.Max(spread[AxisY], spread[AxisZ]))
	switch {
	case math.Abs(top-spread[AxisX]) < Tolerance:
		return AxisX
	case math.Abs(top-spread[AxisY]) < Tolerance:
		return AxisY
	default:
		return AxisZ
	}
}

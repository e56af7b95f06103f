// Package stats summarises a set of points using only the point package's
// capability interfaces, so it works with any registered format.
package stats

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/robert-malhotra/go-las/las/point"
)

// ErrNoPoints is returned by Summarize for an empty input.
var ErrNoPoints = errors.New("no points to summarize")

// Axis describes the distribution of one numeric field.
type Axis struct {
	Min, Max     float64
	Mean, StdDev float64
}

// Shape describes the spread of the XYZ coordinates through the eigenvalues
// of their covariance matrix, largest first. Linearity, planarity and
// scattering are the usual LIDAR dimensionality features; they sum to 1.
type Shape struct {
	Eigenvalues [3]float64
	Linearity   float64
	Planarity   float64
	Scattering  float64
}

// Summary is the result of Summarize. Coordinates are raw record integers;
// scale and offset are not applied.
type Summary struct {
	Count   int
	Formats map[point.Format]int

	WithTime       int
	WithColor      int
	WithNIR        int
	WithWavePacket int

	X, Y, Z   Axis
	Intensity Axis
	GPSTime   Axis // over points that carry a time

	Classes map[uint8]int // by classification value
	Returns map[uint8]int // by return number

	Shape Shape // zero for fewer than three points
}

// Summarize computes a Summary over pts.
func Summarize(pts []point.Point) (Summary, error) {
	if len(pts) == 0 {
		return Summary{}, ErrNoPoints
	}

	s := Summary{
		Count:   len(pts),
		Formats: make(map[point.Format]int),
		Classes: make(map[uint8]int),
		Returns: make(map[uint8]int),
	}

	n := len(pts)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	intensity := make([]float64, n)
	var times []float64

	for i, p := range pts {
		a := p.Attributes()
		xs[i], ys[i], zs[i] = float64(a.X), float64(a.Y), float64(a.Z)
		intensity[i] = float64(a.Intensity)

		s.Formats[p.Format()]++
		s.Classes[a.Classification]++
		s.Returns[a.ReturnNumber]++

		if t, ok := p.(point.HasTime); ok {
			s.WithTime++
			times = append(times, t.GPSTime())
		}
		if _, ok := p.(point.HasColor); ok {
			s.WithColor++
		}
		if _, ok := p.(point.HasNearInfrared); ok {
			s.WithNIR++
		}
		if _, ok := p.(point.HasWavePacket); ok {
			s.WithWavePacket++
		}
	}

	s.X = axis(xs)
	s.Y = axis(ys)
	s.Z = axis(zs)
	s.Intensity = axis(intensity)
	if len(times) > 0 {
		s.GPSTime = axis(times)
	}
	if n >= 3 {
		s.Shape = shape(xs, ys, zs)
	}
	return s, nil
}

func axis(v []float64) Axis {
	a := Axis{Min: floats.Min(v), Max: floats.Max(v)}
	if len(v) == 1 {
		a.Mean = v[0]
		return a
	}
	a.Mean, a.StdDev = stat.MeanStdDev(v, nil)
	return a
}

func shape(xs, ys, zs []float64) Shape {
	n := len(xs)
	data := mat.NewDense(n, 3, nil)
	data.SetCol(0, xs)
	data.SetCol(1, ys)
	data.SetCol(2, zs)

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, data, nil)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, false) {
		return Shape{}
	}
	vals := eig.Values(nil)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))

	var sh Shape
	copy(sh.Eigenvalues[:], vals)
	l1, l2, l3 := sh.Eigenvalues[0], sh.Eigenvalues[1], sh.Eigenvalues[2]
	if l1 <= 0 {
		return sh
	}
	// Rounding can leave tiny negative eigenvalues on degenerate input.
	l2, l3 = max(l2, 0), max(l3, 0)
	sh.Linearity = (l1 - l2) / l1
	sh.Planarity = (l2 - l3) / l1
	sh.Scattering = l3 / l1
	return sh
}

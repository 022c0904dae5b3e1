/*
 * shapes.go, part of c3d-book
 *
 * Copyright 2024 Sam Chong <drsamchong{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package spectrum

import "math"

//The line-shape functions are pure and stateless. All of them take the
//FWHM as the width parameter, so Lorentzian and Gaussian peaks of the
//same width look the same width on a plot. A width of zero is degenerate
//(division by zero); supplying w > 0 is the caller's responsibility.

//Shape identifies a peak line shape.
type Shape int

const (
	//LorentzianShape is the natural line shape of NMR signals.
	LorentzianShape Shape = iota
	//GaussianShape shows up once field inhomogeneity dominates.
	GaussianShape
)

func (s Shape) String() string {
	if s == GaussianShape {
		return "gaussian"
	}
	return "lorentzian"
}

//Func returns the scalar line-shape function for s.
func (s Shape) Func() func(x, a, x0, w float64) float64 {
	if s == GaussianShape {
		return Gaussian
	}
	return Lorentzian
}

//Lorentzian evaluates a Lorentzian line of area a, centre x0 and FWHM w
//at the point x:
//
//	y = (a/pi) * (w/2) / ((x-x0)^2 + (w/2)^2)
//
//The peak value, at x = x0, is 2a/(pi*w).
func Lorentzian(x, a, x0, w float64) float64 {
	hw := w / 2
	return (a / math.Pi) * hw / ((x-x0)*(x-x0) + hw*hw)
}

//Gaussian evaluates a Gaussian line of area a, centre x0 and FWHM w at
//the point x. The FWHM relates to the standard deviation as
//sigma = w/sqrt(8*ln2), and the peak value, at x = x0, is a/(sigma*sqrt(2*pi)).
func Gaussian(x, a, x0, w float64) float64 {
	sigma := w / math.Sqrt(8*math.Ln2)
	norm := a / (sigma * math.Sqrt(2*math.Pi))
	arg := (x - x0) / sigma
	return norm * math.Exp(-arg*arg/2)
}

//Eval evaluates the scalar shape f over every point of the x slice,
//returning a new slice (or filling dest, if one of the right length is
//given).
func Eval(f func(x, a, x0, w float64) float64, x []float64, a, x0, w float64, dest ...[]float64) []float64 {
	var y []float64
	if len(dest) > 0 && len(dest[0]) == len(x) {
		y = dest[0]
	} else {
		y = make([]float64, len(x))
	}
	for i, v := range x {
		y[i] = f(v, a, x0, w)
	}
	return y
}

//Linspace returns n evenly spaced values from start to stop, inclusive.
//It panics if n < 2, as a smaller axis is useless for a spectrum.
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		panic("spectrum.Linspace: need at least 2 points")
	}
	x := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	x[n-1] = stop //avoid accumulated rounding on the endpoint
	return x
}

//Synthetic builds a spectrum by evaluating the sum of the given shape
//at each (a, x0, w) parameter triple over the axis x. It is used both to
//generate teaching data and to overlay fitted models on measured spectra.
func Synthetic(x []float64, shape Shape, params ...[3]float64) (*Spectrum, error) {
	f := shape.Func()
	y := make([]float64, len(x))
	for _, p := range params {
		for i, v := range x {
			y[i] += f(v, p[0], p[1], p[2])
		}
	}
	return New(x, y)
}

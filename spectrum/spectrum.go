/*
 * spectrum.go, part of c3d-book
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

//Package spectrum holds 1D spectra (NMR, mostly, but nothing here is
//NMR-specific) and the line-shape functions used to model their peaks.
package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//Spectrum is a 1D spectrum: an x axis (chemical shift, in ppm for NMR data)
//and the intensity sampled at each x. The x axis must be strictly monotonic;
//for NMR it is conventionally descending. A Spectrum is immutable once
//created: the accessors return copies, so downstream analyses can't corrupt
//the loaded data.
type Spectrum struct {
	x []float64
	y []float64
}

//New creates a Spectrum from the given axes. The slices are copied. It
//returns an error if the lengths differ, there are fewer than 2 points,
//or x is not strictly monotonic.
func New(x, y []float64) (*Spectrum, error) {
	if len(x) != len(y) {
		return nil, Error{fmt.Sprintf("x and y lengths differ: %d, %d", len(x), len(y)), "", []string{"New"}}
	}
	if len(x) < 2 {
		return nil, Error{fmt.Sprintf("a spectrum needs at least 2 points, got %d", len(x)), "", []string{"New"}}
	}
	asc := x[1] > x[0]
	for i := 1; i < len(x); i++ {
		if (asc && x[i] <= x[i-1]) || (!asc && x[i] >= x[i-1]) {
			return nil, Error{fmt.Sprintf("x axis not strictly monotonic at point %d", i), "", []string{"New"}}
		}
	}
	S := new(Spectrum)
	S.x = make([]float64, len(x))
	S.y = make([]float64, len(y))
	copy(S.x, x)
	copy(S.y, y)
	return S, nil
}

//Len returns the number of points in the spectrum.
func (S *Spectrum) Len() int {
	return len(S.x)
}

//X returns a copy of the x axis. If a destination slice of the right
//length is given, it is used instead of allocating.
func (S *Spectrum) X(dest ...[]float64) []float64 {
	return copyaxis(S.x, dest...)
}

//Y returns a copy of the intensity axis. If a destination slice of the
//right length is given, it is used instead of allocating.
func (S *Spectrum) Y(dest ...[]float64) []float64 {
	return copyaxis(S.y, dest...)
}

//XAt and YAt return single points; they panic on out-of-range indexes,
//as do the other fundamental accessors in this library.
func (S *Spectrum) XAt(i int) float64 { return S.x[i] }

func (S *Spectrum) YAt(i int) float64 { return S.y[i] }

//Descending returns whether the x axis decreases along the spectrum,
//as is the convention for NMR chemical shift.
func (S *Spectrum) Descending() bool {
	return S.x[1] < S.x[0]
}

//MeanSpacing returns the mean absolute spacing between adjacent x samples.
//Analyses that use it (peak width conversion to physical units, notably)
//assume uniform sampling; for a non-uniform axis the value is only an
//approximation, and nothing here validates uniformity.
func (S *Spectrum) MeanSpacing() float64 {
	diffs := make([]float64, len(S.x)-1)
	for i := 1; i < len(S.x); i++ {
		diffs[i-1] = math.Abs(S.x[i] - S.x[i-1])
	}
	return floats.Sum(diffs) / float64(len(diffs))
}

//MaxY returns the maximum intensity and its index.
func (S *Spectrum) MaxY() (float64, int) {
	idx := floats.MaxIdx(S.y)
	return S.y[idx], idx
}

func copyaxis(src []float64, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) == len(src) {
		d = dest[0]
	} else {
		d = make([]float64, len(src))
	}
	copy(d, src)
	return d
}

//Errors

//Error is the concrete error type for this package. It implements the
//c3d Error interface, Decorate included.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("spectrum error: %s", err.message)
	}
	return fmt.Sprintf("spectrum file %s error: %s", err.filename, err.message)
}

func (err Error) Decorate(deco string) []string {
	//This works despite the value receiver: err.deco is a slice, hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

/*
 * peakfit.go, part of c3d-book
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

//Package peakfit extracts peaks from 1D spectra: it locates candidate
//peaks, converts them to physical units, refines each one by nonlinear
//least squares, and reports the quality of the result.
//
//The pipeline is: Locate -> ToEstimates -> FitAll -> Synthesize/RSquared.
//Each peak is fitted independently, which is only valid when peaks are
//well separated relative to their widths; overlapping peaks would need a
//joint multi-peak fit, which this package does not do.
package peakfit

import (
	"fmt"

	"github.com/drsamchong/c3d-book/spectrum"
)

//Candidate is a peak found by the locator, in sample units: the index of
//the local maximum in the intensity sequence, the sampled intensity
//there, and the full width at half maximum estimated by interpolating
//the half-height crossings, in samples.
type Candidate struct {
	Index        int
	Height       float64
	WidthSamples float64
}

//Estimate is the physically-scaled form of a Candidate, used as the
//optimizer's initial guess. Amplitude is the area of the line shape (the
//parameter the shape functions take), not the peak height.
type Estimate struct {
	Amplitude float64
	Centre    float64 //in the x axis units (ppm for NMR)
	Width     float64 //FWHM, x axis units
}

//FittedPeak is the optimizer's output for one peak: the refined
//parameter triple and its 3x3 covariance matrix, in the order
//(amplitude, centre, width). Peaks are fitted separately, so covariances
//between different peaks don't exist.
type FittedPeak struct {
	Amplitude float64
	Centre    float64
	Width     float64
	Cov       [3][3]float64
	Shape     spectrum.Shape
}

//Params returns the (amplitude, centre, width) triple as an array, in
//the parameter order used throughout the package.
func (F *FittedPeak) Params() [3]float64 {
	return [3]float64{F.Amplitude, F.Centre, F.Width}
}

//StdErrors returns the 1-sigma standard error of each parameter: the
//square root of the diagonal of the covariance matrix.
func (F *FittedPeak) StdErrors() [3]float64 {
	var se [3]float64
	for i := 0; i < 3; i++ {
		se[i] = sqrtNonNeg(F.Cov[i][i])
	}
	return se
}

//String prints the peak in the format used in the course text.
func (F *FittedPeak) String() string {
	se := F.StdErrors()
	return fmt.Sprintf("amplitude %.4g +/- %.2g, centre %.4g +/- %.2g, width %.4g +/- %.2g",
		F.Amplitude, se[0], F.Centre, se[1], F.Width, se[2])
}

//Result pairs one estimate with the outcome of fitting it. Exactly one
//of Peak and Err is set. A failed fit for one peak does not affect the
//others.
type Result struct {
	Estimate Estimate
	Peak     *FittedPeak
	Err      error
}

//Errors

//FitError reports a failed per-peak fit: non-convergence, or a singular
//or ill-conditioned covariance. It implements the c3d Error interface.
type FitError struct {
	message string
	deco    []string
}

func (err FitError) Error() string {
	return fmt.Sprintf("peakfit error: %s", err.message)
}

func (err FitError) Decorate(deco string) []string {
	//value receiver, but err.deco is a slice, hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

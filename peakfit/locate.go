/*
 * locate.go, part of c3d-book
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

package peakfit

import (
	"math"

	"github.com/drsamchong/c3d-book/spectrum"
)

//LocateOptions are the filter thresholds of the peak locator. The zero
//value disables all filtering, which flags every local maximum in the
//sequence, noise included; the result is then largely useless for
//fitting. This is shown on purpose in the course: thresholds must be
//tuned to the noise floor of the data at hand, and the locator does not
//try to guess them.
type LocateOptions struct {
	MinHeight     float64 //keep only maxima at least this high; zero or negative keeps everything, negative-going maxima included
	MinProminence float64 //keep only maxima that rise at least this much over the surrounding valleys
}

//Locate finds candidate peaks in the intensity sequence y: local maxima
//that pass the filters in opts, each with its height and an interpolated
//full width at half maximum in sample units. Endpoints are never peaks.
func Locate(y []float64, opts ...LocateOptions) []Candidate {
	var o LocateOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	cands := make([]Candidate, 0, 8)
	for i := 1; i < len(y)-1; i++ {
		if !(y[i] > y[i-1] && y[i] > y[i+1]) {
			continue
		}
		if o.MinHeight > 0 && y[i] < o.MinHeight {
			continue
		}
		if o.MinProminence > 0 && prominence(y, i) < o.MinProminence {
			continue
		}
		cands = append(cands, Candidate{Index: i, Height: y[i], WidthSamples: widthSamples(y, i)})
	}
	return cands
}

//prominence of the maximum at index i: its height over the higher of the
//two lowest valleys separating it from higher ground (or from the ends
//of the sequence).
func prominence(y []float64, i int) float64 {
	leftmin := y[i]
	for j := i - 1; j >= 0; j-- {
		if y[j] > y[i] {
			break
		}
		if y[j] < leftmin {
			leftmin = y[j]
		}
	}
	rightmin := y[i]
	for j := i + 1; j < len(y); j++ {
		if y[j] > y[i] {
			break
		}
		if y[j] < rightmin {
			rightmin = y[j]
		}
	}
	return y[i] - math.Max(leftmin, rightmin)
}

//widthSamples estimates the FWHM of the maximum at index i, in sample
//units, by walking out to the first samples under half the peak height
//on each side and interpolating the crossing points linearly. If a side
//never falls under half height (badly overlapped or truncated peaks),
//the distance to the end of the walk is used as-is.
func widthSamples(y []float64, i int) float64 {
	half := y[i] / 2
	left := float64(i)
	for j := i - 1; j >= 0; j-- {
		if y[j] <= half {
			//linear interpolation between j and j+1
			left = float64(j) + (half-y[j])/(y[j+1]-y[j])
			break
		}
		left = float64(j)
	}
	right := float64(i)
	for j := i + 1; j < len(y); j++ {
		if y[j] <= half {
			right = float64(j) - (half-y[j])/(y[j-1]-y[j])
			break
		}
		right = float64(j)
	}
	return right - left
}

//ToEstimate converts the candidate to physical units using the x axis of
//the spectrum it was located in: the centre is the x value at the
//candidate's index, and the width is the candidate's sample width scaled
//by the mean absolute spacing of the axis. The scaling assumes uniform
//sampling; a non-uniform axis introduces a systematic error in the width
//that nothing here detects. The sampled height is converted to the area
//amplitude the line-shape functions take, using the shape's own
//height-to-area relation at the estimated width.
func (C Candidate) ToEstimate(S *spectrum.Spectrum, shape spectrum.Shape) Estimate {
	width := C.WidthSamples * S.MeanSpacing()
	var amp float64
	if shape == spectrum.GaussianShape {
		sigma := width / math.Sqrt(8*math.Ln2)
		amp = C.Height * sigma * math.Sqrt(2*math.Pi)
	} else {
		amp = C.Height * math.Pi * width / 2
	}
	return Estimate{Amplitude: amp, Centre: S.XAt(C.Index), Width: width}
}

//ToEstimates maps ToEstimate over a candidate set.
func ToEstimates(cands []Candidate, S *spectrum.Spectrum, shape spectrum.Shape) []Estimate {
	ests := make([]Estimate, len(cands))
	for i, c := range cands {
		ests[i] = c.ToEstimate(S, shape)
	}
	return ests
}

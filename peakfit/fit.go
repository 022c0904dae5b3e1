/*
 * fit.go, part of c3d-book
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
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"

	"github.com/drsamchong/c3d-book/spectrum"
)

const (
	fitIterations = 500
	fitTau        = 1e-6
	fitEps        = 1e-8
)

//FitPeak refines one peak estimate by Levenberg-Marquardt nonlinear
//least squares: it minimizes the sum of squared residuals between the
//shape evaluated over the full x axis and the observed intensities,
//starting from the estimate's (amplitude, centre, width). On success it
//returns the refined parameters and their covariance matrix. It returns
//a FitError when the optimizer does not converge, when it converges to
//non-finite or out-of-range parameters (the classic far-off initial
//guess case demonstrated in the course), or when the covariance is
//singular.
func FitPeak(S *spectrum.Spectrum, est Estimate, shape spectrum.Shape) (*FittedPeak, error) {
	x := S.X()
	y := S.Y()
	f := shape.Func()
	resFunc := func(dst, p []float64) {
		for i := range x {
			dst[i] = y[i] - f(x[i], p[0], p[1], p[2])
		}
	}
	nj := &lm.NumJac{Func: resFunc}
	problem := lm.LMProblem{
		Dim:        3,
		Size:       len(x),
		Func:       resFunc,
		Jac:        nj.Jac,
		InitParams: []float64{est.Amplitude, est.Centre, est.Width},
		Tau:        fitTau,
		Eps1:       fitEps,
		Eps2:       fitEps,
	}
	settings := &lm.Settings{Iterations: fitIterations, ObjectiveTol: 1e-16}
	result, err := lm.LM(problem, settings)
	if err != nil {
		ferr := FitError{fmt.Sprintf("optimization failed: %v", err), []string{"FitPeak"}}
		return nil, ferr
	}
	p := result.X
	if !finite(p...) {
		return nil, FitError{fmt.Sprintf("fit diverged to non-finite parameters %v (initial guess too far off?)", p), []string{"FitPeak"}}
	}
	if outOfRange(p[1], x) {
		return nil, FitError{fmt.Sprintf("fitted centre %g outside the spectrum (initial guess too far off?)", p[1]), []string{"FitPeak"}}
	}
	//the line shapes are even in the sign of the width, so a negative
	//width is the same curve; report the positive one.
	if p[2] < 0 {
		p[2] = -p[2]
	}
	cov, err := covariance(nj, resFunc, p, len(x))
	if err != nil {
		return nil, errDecorate(err, "FitPeak")
	}
	F := &FittedPeak{Amplitude: p[0], Centre: p[1], Width: p[2], Cov: cov, Shape: shape}
	return F, nil
}

//FitAll maps FitPeak over the estimates. Every estimate yields a Result;
//a failed fit is recorded in its Result and does not stop the rest.
func FitAll(S *spectrum.Spectrum, ests []Estimate, shape spectrum.Shape) []Result {
	results := make([]Result, len(ests))
	for i, est := range ests {
		results[i].Estimate = est
		peak, err := FitPeak(S, est, shape)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Peak = peak
	}
	return results
}

//Peaks returns the successfully fitted peaks of a result set, in order.
func Peaks(results []Result) []*FittedPeak {
	peaks := make([]*FittedPeak, 0, len(results))
	for _, r := range results {
		if r.Peak != nil {
			peaks = append(peaks, r.Peak)
		}
	}
	return peaks
}

//covariance computes the parameter covariance at the solution p:
//C = (J^T J)^-1 * SSR/(n-dim), with J the numerical Jacobian of the
//residuals. A singular or ill-conditioned J^T J, or a negative variance
//on the diagonal, is a fit failure, not something to paper over.
func covariance(nj *lm.NumJac, resFunc func(dst, p []float64), p []float64, n int) ([3][3]float64, error) {
	var cov [3][3]float64
	jac := mat.NewDense(n, 3, nil)
	nj.Jac(jac, p)
	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)
	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return cov, FitError{fmt.Sprintf("singular covariance: %v", err), []string{"covariance"}}
	}
	resid := make([]float64, n)
	resFunc(resid, p)
	var ssr float64
	for _, r := range resid {
		ssr += r * r
	}
	sigma2 := ssr / float64(n-3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cov[i][j] = inv.At(i, j) * sigma2
		}
		if cov[i][i] < 0 {
			return cov, FitError{fmt.Sprintf("negative variance for parameter %d, covariance is ill-conditioned", i), []string{"covariance"}}
		}
	}
	return cov, nil
}

//Synthesize sums the fitted peaks over the given x axis, producing the
//calculated spectrum used to overlay against the measured one.
func Synthesize(x []float64, peaks []*FittedPeak, shape spectrum.Shape) (*spectrum.Spectrum, error) {
	params := make([][3]float64, len(peaks))
	for i, pk := range peaks {
		params[i] = pk.Params()
	}
	S, err := spectrum.Synthetic(x, shape, params...)
	if err != nil {
		return nil, errDecorate(err, "Synthesize")
	}
	return S, nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

//the x axis may run in either direction.
func outOfRange(v float64, x []float64) bool {
	lo, hi := x[0], x[len(x)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return v < lo || v > hi
}

func sqrtNonNeg(v float64) float64 {
	if v < 0 {
		return math.NaN()
	}
	return math.Sqrt(v)
}

//errDecorate decorates err with the caller name if it implements the
//c3d Error interface.
func errDecorate(err error, caller string) error {
	type decorator interface {
		Decorate(string) []string
	}
	if err2, ok := err.(decorator); ok {
		err2.Decorate(caller)
	}
	return err
}

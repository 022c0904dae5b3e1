/*
 * report.go, part of c3d-book
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
	"strings"

	"gonum.org/v1/gonum/stat"
)

//RSquared is the coefficient of determination of calc against obs:
//R^2 = 1 - SSR/SST, with SSR the sum of squared residuals and SST the
//total sum of squares around the mean of obs. A perfect fit gives
//exactly 1; zero or less means the model does no better than the mean.
//It panics if the slices differ in length. A constant obs (SST of zero)
//returns NaN, since the score is undefined there.
func RSquared(obs, calc []float64) float64 {
	if len(obs) != len(calc) {
		panic("peakfit.RSquared: mismatched lengths")
	}
	mean := stat.Mean(obs, nil)
	var ssr, sst float64
	for i, o := range obs {
		r := o - calc[i]
		ssr += r * r
		d := o - mean
		sst += d * d
	}
	if sst == 0 {
		return math.NaN()
	}
	return 1 - ssr/sst
}

//Report formats the successfully fitted peaks of a result set, one line
//per peak, plus the failures, the way the course text prints them.
func Report(results []Result) string {
	var b strings.Builder
	for i, r := range results {
		if r.Peak != nil {
			fmt.Fprintf(&b, "peak %d: %v\n", i+1, r.Peak)
		} else {
			fmt.Fprintf(&b, "peak %d: fit failed: %v\n", i+1, r.Err)
		}
	}
	return b.String()
}

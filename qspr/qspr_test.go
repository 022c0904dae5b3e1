/*
 * qspr_test.go, part of c3d-book
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

package qspr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drsamchong/c3d-book/qspr"
)

//TestFitLine recovers an exact line, y = 2 + 3x.
func TestFitLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{2, 5, 8, 11, 14}
	L, err := qspr.FitLine(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, L.Alpha, 1e-10)
	assert.InDelta(t, 3.0, L.Beta, 1e-10)
	assert.InDelta(t, 1.0, L.R2, 1e-10)
	assert.InDelta(t, 17.0, L.Predict(5), 1e-9)
}

//TestFitLineNaN checks that incomplete pairs are excluded rather than
//poisoning the fit.
func TestFitLineNaN(t *testing.T) {
	nan := math.NaN()
	x := []float64{0, 1, nan, 3, 4}
	y := []float64{2, 5, 8, nan, 14}
	L, err := qspr.FitLine(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, L.Alpha, 1e-10)
	assert.InDelta(t, 3.0, L.Beta, 1e-10)
	//dropping two pairs leaves 3 points, the minimum; one fewer is an error
	_, err = qspr.FitLine([]float64{0, 1, nan}, []float64{2, 5, 8})
	assert.Error(t, err)
	_, err = qspr.FitLine(x, y[:4])
	assert.Error(t, err, "mismatched lengths must be rejected")
}

//TestFit recovers an exact two-predictor model, y = 1 + 2a + 3b.
func TestFit(t *testing.T) {
	X := [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
		{2, 1},
		{1, 2},
	}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 1 + 2*row[0] + 3*row[1]
	}
	M, err := qspr.Fit(X, y, []string{"a", "b"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, M.Intercept, 1e-9)
	assert.InDelta(t, 2.0, M.Coeffs[0], 1e-9)
	assert.InDelta(t, 3.0, M.Coeffs[1], 1e-9)
	assert.InDelta(t, 1.0, M.R2, 1e-9)
	for _, se := range M.StdErrs {
		assert.InDelta(t, 0.0, se, 1e-7, "an exact model has no parameter uncertainty")
	}
	p, err := M.Predict([]float64{3, 3})
	require.NoError(t, err)
	assert.InDelta(t, 16.0, p, 1e-8)
	ps, err := M.PredictAll(X)
	require.NoError(t, err)
	require.Len(t, ps, len(X))
	for i := range ps {
		assert.InDelta(t, y[i], ps[i], 1e-8)
	}
	_, err = M.Predict([]float64{1})
	assert.Error(t, err, "a short predictor vector must be rejected")
	assert.Contains(t, M.String(), "a")
}

//TestFitNaNRows checks the row exclusion and the overdetermination
//guard.
func TestFitNaNRows(t *testing.T) {
	nan := math.NaN()
	X := [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
		{2, 1},
		{1, 2},
		{nan, 1},
	}
	y := []float64{1, 3, 4, 6, 8, 9, 100}
	M, err := qspr.Fit(X, y, nil)
	require.NoError(t, err)
	//the NaN row carried an absurd response; excluded, the model is exact
	assert.InDelta(t, 1.0, M.Intercept, 1e-9)
	assert.InDelta(t, 2.0, M.Coeffs[0], 1e-9)
	assert.InDelta(t, 3.0, M.Coeffs[1], 1e-9)
	//with too few complete rows the problem isn't overdetermined
	_, err = qspr.Fit(X[:3], y[:3], nil)
	assert.Error(t, err)
}

/*
 * qspr.go, part of c3d-book
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

//Package qspr fits the linear structure-property models of the course:
//ordinary least squares from molecular descriptors to a property,
//boiling point being the worked example. One predictor or several; no
//regularization, no cross-validation machinery, just the straight OLS
//the text derives.
package qspr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//Line is a single-predictor least-squares line y = Alpha + Beta*x.
type Line struct {
	Alpha, Beta float64
	R2          float64
}

//FitLine fits a least-squares line through the (x, y) points. NaN pairs
//are excluded. It needs at least 3 complete points to say anything.
func FitLine(x, y []float64) (*Line, error) {
	if len(x) != len(y) {
		return nil, Error{fmt.Sprintf("x and y lengths differ: %d, %d", len(x), len(y)), []string{"FitLine"}}
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 3 {
		return nil, Error{fmt.Sprintf("only %d complete points, need at least 3", len(xs)), []string{"FitLine"}}
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	return &Line{Alpha: alpha, Beta: beta, R2: r2}, nil
}

//Predict evaluates the line at x.
func (L *Line) Predict(x float64) float64 {
	return L.Alpha + L.Beta*x
}

func (L *Line) String() string {
	return fmt.Sprintf("y = %.4g + %.4g*x (R2 = %.4f)", L.Alpha, L.Beta, L.R2)
}

//Model is a multi-predictor least-squares model
//y = Intercept + sum_i Coeffs[i]*x[i]. StdErrs holds the 1-sigma
//standard errors, intercept first, then one per coefficient.
type Model struct {
	Names     []string //predictor names, optional, same order as Coeffs
	Intercept float64
	Coeffs    []float64
	StdErrs   []float64
	R2        float64
}

//Fit fits an OLS model of y on the rows of X (one row per observation,
//one column per predictor) by QR decomposition of the design matrix.
//names labels the predictors and may be nil. Rows containing NaN are
//excluded. The problem must be overdetermined after exclusion.
func Fit(X [][]float64, y []float64, names []string) (*Model, error) {
	if len(X) != len(y) {
		return nil, Error{fmt.Sprintf("%d rows of predictors but %d responses", len(X), len(y)), []string{"Fit"}}
	}
	if len(X) == 0 {
		return nil, Error{"no data", []string{"Fit"}}
	}
	p := len(X[0])
	if names != nil && len(names) != p {
		return nil, Error{fmt.Sprintf("%d names for %d predictors", len(names), p), []string{"Fit"}}
	}
	rows := make([]int, 0, len(X))
	for i, row := range X {
		if len(row) != p {
			return nil, Error{fmt.Sprintf("row %d has %d predictors, row 0 has %d", i, len(row), p), []string{"Fit"}}
		}
		if math.IsNaN(y[i]) || anyNaN(row) {
			continue
		}
		rows = append(rows, i)
	}
	n := len(rows)
	if n <= p+1 {
		return nil, Error{fmt.Sprintf("%d complete observations for %d parameters, the problem is not overdetermined", n, p+1), []string{"Fit"}}
	}
	//design matrix with an intercept column of ones
	A := mat.NewDense(n, p+1, nil)
	yv := mat.NewVecDense(n, nil)
	for k, i := range rows {
		A.Set(k, 0, 1)
		for j := 0; j < p; j++ {
			A.Set(k, j+1, X[i][j])
		}
		yv.SetVec(k, y[i])
	}
	var qr mat.QR
	qr.Factorize(A)
	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, yv); err != nil {
		return nil, Error{fmt.Sprintf("singular design matrix: %v", err), []string{"Fit"}}
	}
	M := new(Model)
	if names != nil {
		M.Names = append([]string{}, names...)
	}
	M.Intercept = coef.AtVec(0)
	M.Coeffs = make([]float64, p)
	for j := 0; j < p; j++ {
		M.Coeffs[j] = coef.AtVec(j + 1)
	}
	//R2 and coefficient standard errors from the residuals
	var pred mat.VecDense
	pred.MulVec(A, &coef)
	var ssr, sst float64
	ymean := stat.Mean(yv.RawVector().Data, nil)
	for k := 0; k < n; k++ {
		r := yv.AtVec(k) - pred.AtVec(k)
		ssr += r * r
		d := yv.AtVec(k) - ymean
		sst += d * d
	}
	if sst > 0 {
		M.R2 = 1 - ssr/sst
	} else {
		M.R2 = math.NaN()
	}
	sigma2 := ssr / float64(n-p-1)
	var xtx, inv mat.Dense
	xtx.Mul(A.T(), A)
	if err := inv.Inverse(&xtx); err != nil {
		return nil, Error{fmt.Sprintf("ill-conditioned design matrix: %v", err), []string{"Fit"}}
	}
	M.StdErrs = make([]float64, p+1)
	for j := 0; j <= p; j++ {
		M.StdErrs[j] = math.Sqrt(inv.At(j, j) * sigma2)
	}
	return M, nil
}

//Predict evaluates the model for one predictor vector.
func (M *Model) Predict(x []float64) (float64, error) {
	if len(x) != len(M.Coeffs) {
		return 0, Error{fmt.Sprintf("got %d predictors, model has %d", len(x), len(M.Coeffs)), []string{"Predict"}}
	}
	y := M.Intercept
	for i, c := range M.Coeffs {
		y += c * x[i]
	}
	return y, nil
}

//PredictAll maps Predict over the rows of X.
func (M *Model) PredictAll(X [][]float64) ([]float64, error) {
	ys := make([]float64, len(X))
	for i, row := range X {
		y, err := M.Predict(row)
		if err != nil {
			return nil, errDecorate(err, "PredictAll")
		}
		ys[i] = y
	}
	return ys, nil
}

func (M *Model) String() string {
	ret := fmt.Sprintf("y = %.4g", M.Intercept)
	for i, c := range M.Coeffs {
		name := fmt.Sprintf("x%d", i+1)
		if M.Names != nil {
			name = M.Names[i]
		}
		ret += fmt.Sprintf(" + %.4g*%s", c, name)
	}
	return ret + fmt.Sprintf(" (R2 = %.4f)", M.R2)
}

func anyNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

//Errors

//Error is the concrete error type for this package; it implements the
//c3d Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("qspr error: %s", err.message)
}

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func errDecorate(err error, caller string) error {
	type decorator interface {
		Decorate(string) []string
	}
	if err2, ok := err.(decorator); ok {
		err2.Decorate(caller)
	}
	return err
}

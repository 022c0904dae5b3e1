/*
 * describe.go, part of c3d-book
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

package tabular

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary holds the descriptive statistics of one column, pandas
//describe() style, which is what the course shows students first.
type Summary struct {
	Name   string
	N      int //non-missing values
	NaN    int //missing values
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: n=%d (missing %d) mean=%.4g std=%.4g min=%.4g q1=%.4g median=%.4g q3=%.4g max=%.4g",
		s.Name, s.N, s.NaN, s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max)
}

//Describe computes the summary statistics of the named column. Missing
//values are counted and excluded from the statistics. An all-missing
//column is an error.
func (T *Table) Describe(name string) (Summary, error) {
	col, ok := T.cols[name]
	if !ok {
		return Summary{}, Error{fmt.Sprintf("no column %q", name), "", []string{"Describe"}}
	}
	clean := make([]float64, 0, len(col))
	nan := 0
	for _, v := range col {
		if math.IsNaN(v) {
			nan++
			continue
		}
		clean = append(clean, v)
	}
	if len(clean) == 0 {
		return Summary{}, Error{fmt.Sprintf("column %q has no non-missing values", name), "", []string{"Describe"}}
	}
	sort.Float64s(clean)
	s := Summary{
		Name:   name,
		N:      len(clean),
		NaN:    nan,
		Mean:   stat.Mean(clean, nil),
		StdDev: stat.StdDev(clean, nil),
		Min:    clean[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, clean, nil),
		Median: stat.Quantile(0.5, stat.Empirical, clean, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, clean, nil),
		Max:    clean[len(clean)-1],
	}
	return s, nil
}

//Correlation returns the Pearson correlation between two columns,
//excluding rows where either value is missing.
func (T *Table) Correlation(a, b string) (float64, error) {
	ca, ok := T.cols[a]
	if !ok {
		return 0, Error{fmt.Sprintf("no column %q", a), "", []string{"Correlation"}}
	}
	cb, ok := T.cols[b]
	if !ok {
		return 0, Error{fmt.Sprintf("no column %q", b), "", []string{"Correlation"}}
	}
	xs := make([]float64, 0, len(ca))
	ys := make([]float64, 0, len(cb))
	for i := range ca {
		if math.IsNaN(ca[i]) || math.IsNaN(cb[i]) {
			continue
		}
		xs = append(xs, ca[i])
		ys = append(ys, cb[i])
	}
	if len(xs) < 2 {
		return 0, Error{fmt.Sprintf("columns %q and %q share fewer than 2 complete rows", a, b), "", []string{"Correlation"}}
	}
	return stat.Correlation(xs, ys, nil), nil
}

//CorrMatrix returns the pairwise Pearson correlations of the given
//columns (all numeric columns if none given), in the same order, as a
//row-major square matrix.
func (T *Table) CorrMatrix(columns ...string) ([][]float64, error) {
	if len(columns) == 0 {
		columns = T.names
	}
	m := make([][]float64, len(columns))
	for i := range columns {
		m[i] = make([]float64, len(columns))
		m[i][i] = 1
	}
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r, err := T.Correlation(columns[i], columns[j])
			if err != nil {
				return nil, errDecorate(err, "CorrMatrix")
			}
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m, nil
}

//Range returns the minimum and maximum of the named column, ignoring
//missing values.
func (T *Table) Range(name string) (float64, float64, error) {
	col, err := T.Column(name)
	if err != nil {
		return 0, 0, errDecorate(err, "Range")
	}
	clean := col[:0]
	for _, v := range col {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return 0, 0, Error{fmt.Sprintf("column %q has no non-missing values", name), "", []string{"Range"}}
	}
	return floats.Min(clean), floats.Max(clean), nil
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

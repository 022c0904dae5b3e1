/*
 * table.go, part of c3d-book
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

//Package tabular loads, cleans and summarizes the tabular chemical and
//thermochemical data sets used in the course. Missing values become NaN
//on load and can be dropped explicitly; nothing is imputed behind the
//reader's back.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//Table is a set of named numeric columns of equal length, with an
//optional label per row (compound names, usually). Missing values are
//NaN.
type Table struct {
	names   []string //column names, in file order
	cols    map[string][]float64
	labels  []string //row labels; nil if the file had no label column
	numRows int
}

//ReadOptions controls CSV parsing. The zero value expects a header line
//of column names and no label column, and treats empty fields, "NA" and
//"NaN" as missing.
type ReadOptions struct {
	LabelColumn   string   //name of a non-numeric column holding row labels
	MissingTokens []string //field values meaning "missing", besides the defaults
	Comment       rune     //lines starting with this rune are skipped, if non-zero
}

//ReadCSV reads a CSV file with a header line into a Table. Files ending
//in ".gz" are decompressed transparently. Every column except the label
//column must parse as numbers or missing tokens; anything else is an
//error, since silently swallowing a typo in a data set is worse than
//failing the load.
func ReadCSV(filename string, opts ...ReadOptions) (*Table, error) {
	var o ReadOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{fmt.Sprintf("unable to open: %v", err), filename, []string{"ReadCSV"}}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{fmt.Sprintf("bad gzip data: %v", err), filename, []string{"ReadCSV"}}
		}
		defer gz.Close()
		r = gz
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	if o.Comment != 0 {
		cr.Comment = o.Comment
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, Error{fmt.Sprintf("csv: %v", err), filename, []string{"ReadCSV"}}
	}
	if len(records) < 2 {
		return nil, Error{"need a header line and at least one data row", filename, []string{"ReadCSV"}}
	}
	header := records[0]
	labelIdx := -1
	T := new(Table)
	T.cols = make(map[string][]float64)
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if seen[name] {
			return nil, Error{fmt.Sprintf("duplicate column %q in header", name), filename, []string{"ReadCSV"}}
		}
		seen[name] = true
		if name == o.LabelColumn && o.LabelColumn != "" {
			labelIdx = i
			continue
		}
		T.names = append(T.names, name)
		T.cols[name] = make([]float64, 0, len(records)-1)
	}
	if o.LabelColumn != "" && labelIdx == -1 {
		return nil, Error{fmt.Sprintf("label column %q not in header", o.LabelColumn), filename, []string{"ReadCSV"}}
	}
	if labelIdx >= 0 {
		T.labels = make([]string, 0, len(records)-1)
	}
	missing := append([]string{"", "NA", "NaN", "nan"}, o.MissingTokens...)
	for rowno, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, Error{fmt.Sprintf("row %d has %d fields, header has %d", rowno+2, len(rec), len(header)), filename, []string{"ReadCSV"}}
		}
		for i, field := range rec {
			field = strings.TrimSpace(field)
			if i == labelIdx {
				T.labels = append(T.labels, field)
				continue
			}
			name := header[i]
			if isMissing(field, missing) {
				T.cols[name] = append(T.cols[name], math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("row %d, column %q: %q is not a number (add it to MissingTokens if it means missing)", rowno+2, name, field), filename, []string{"ReadCSV"}}
			}
			T.cols[name] = append(T.cols[name], v)
		}
	}
	T.numRows = len(records) - 1
	return T, nil
}

func isMissing(field string, tokens []string) bool {
	for _, t := range tokens {
		if field == t {
			return true
		}
	}
	return false
}

//Names returns the numeric column names, in file order.
func (T *Table) Names() []string {
	n := make([]string, len(T.names))
	copy(n, T.names)
	return n
}

//Len returns the number of rows.
func (T *Table) Len() int {
	return T.numRows
}

//Labels returns a copy of the row labels, or nil if the table has none.
func (T *Table) Labels() []string {
	if T.labels == nil {
		return nil
	}
	l := make([]string, len(T.labels))
	copy(l, T.labels)
	return l
}

//Column returns a copy of the named column. It returns an error, not a
//panic, since a mistyped column name in exploratory work is routine.
func (T *Table) Column(name string) ([]float64, error) {
	col, ok := T.cols[name]
	if !ok {
		return nil, Error{fmt.Sprintf("no column %q (have %v)", name, T.names), "", []string{"Column"}}
	}
	c := make([]float64, len(col))
	copy(c, col)
	return c, nil
}

//HasNaN returns whether any value in the named column is missing.
func (T *Table) HasNaN(name string) (bool, error) {
	col, ok := T.cols[name]
	if !ok {
		return false, Error{fmt.Sprintf("no column %q", name), "", []string{"HasNaN"}}
	}
	for _, v := range col {
		if math.IsNaN(v) {
			return true, nil
		}
	}
	return false, nil
}

//DropNaN returns a new table keeping only the rows that have no missing
//value in any of the given columns (all columns, if none are given).
func (T *Table) DropNaN(columns ...string) (*Table, error) {
	if len(columns) == 0 {
		columns = T.names
	}
	check := make([][]float64, 0, len(columns))
	for _, name := range columns {
		col, ok := T.cols[name]
		if !ok {
			return nil, Error{fmt.Sprintf("no column %q", name), "", []string{"DropNaN"}}
		}
		check = append(check, col)
	}
	keep := make([]int, 0, T.numRows)
	for i := 0; i < T.numRows; i++ {
		ok := true
		for _, col := range check {
			if math.IsNaN(col[i]) {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, i)
		}
	}
	N := new(Table)
	N.names = T.Names()
	N.cols = make(map[string][]float64, len(T.names))
	N.numRows = len(keep)
	for _, name := range T.names {
		old := T.cols[name]
		col := make([]float64, 0, len(keep))
		for _, i := range keep {
			col = append(col, old[i])
		}
		N.cols[name] = col
	}
	if T.labels != nil {
		N.labels = make([]string, 0, len(keep))
		for _, i := range keep {
			N.labels = append(N.labels, T.labels[i])
		}
	}
	return N, nil
}

//Select returns a new table with only the given columns, in the given
//order. Row labels, if any, are kept.
func (T *Table) Select(columns ...string) (*Table, error) {
	if len(columns) == 0 {
		return nil, Error{"no columns given", "", []string{"Select"}}
	}
	N := new(Table)
	N.cols = make(map[string][]float64, len(columns))
	N.numRows = T.numRows
	for _, name := range columns {
		col, err := T.Column(name)
		if err != nil {
			return nil, errDecorate(err, "Select")
		}
		N.names = append(N.names, name)
		N.cols[name] = col
	}
	N.labels = T.Labels()
	return N, nil
}

//Errors

//Error is the concrete error type for this package; it implements the
//c3d Error interface.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("tabular error: %s", err.message)
	}
	return fmt.Sprintf("tabular file %s error: %s", err.filename, err.message)
}

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

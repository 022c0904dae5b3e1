/*
 * tabular_test.go, part of c3d-book
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
	"os"
	"path/filepath"
	"testing"
)

//a small alkane boiling-point table, with a missing tpsa for butane and
//a missing molecular weight for hexane.
const alkanes = `name,mw,bp,tpsa
methane,16.04,-161.5,0.0
ethane,30.07,-88.6,0.0
propane,44.10,-42.1,0.0
butane,58.12,-0.5,
pentane,72.15,36.1,0.0
hexane,NA,68.7,0.0
`

func writeCSV(Te *testing.T, data string) string {
	name := filepath.Join(Te.TempDir(), "data.csv")
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func alkaneTable(Te *testing.T) *Table {
	T, err := ReadCSV(writeCSV(Te, alkanes), ReadOptions{LabelColumn: "name"})
	if err != nil {
		Te.Fatal(err)
	}
	return T
}

func TestReadCSV(Te *testing.T) {
	T := alkaneTable(Te)
	if T.Len() != 6 {
		Te.Fatalf("read %d rows, want 6", T.Len())
	}
	names := T.Names()
	if len(names) != 3 || names[0] != "mw" || names[2] != "tpsa" {
		Te.Errorf("wrong column names: %v", names)
	}
	labels := T.Labels()
	if len(labels) != 6 || labels[0] != "methane" || labels[5] != "hexane" {
		Te.Errorf("wrong labels: %v", labels)
	}
	mw, err := T.Column("mw")
	if err != nil {
		Te.Fatal(err)
	}
	if mw[0] != 16.04 || !math.IsNaN(mw[5]) {
		Te.Errorf("mw column came out wrong: %v", mw)
	}
	if _, err := T.Column("boilingpoint"); err == nil {
		Te.Error("a mistyped column name should be an error")
	}
	has, err := T.HasNaN("tpsa")
	if err != nil || !has {
		Te.Error("the empty tpsa field should read as missing")
	}
	has, err = T.HasNaN("bp")
	if err != nil || has {
		Te.Error("bp has no missing values")
	}
}

//TestReadCSVErrors checks that a typo in the data fails the load instead
//of being swallowed.
func TestReadCSVErrors(Te *testing.T) {
	name := writeCSV(Te, "a,b\n1.0,oops\n")
	if _, err := ReadCSV(name); err == nil {
		Te.Error("a non-numeric field should be an error")
	}
	//unless the token is declared as meaning missing
	T, err := ReadCSV(name, ReadOptions{MissingTokens: []string{"oops"}})
	if err != nil {
		Te.Fatal(err)
	}
	if has, _ := T.HasNaN("b"); !has {
		Te.Error("the declared token should read as missing")
	}
	if _, err := ReadCSV(writeCSV(Te, alkanes), ReadOptions{LabelColumn: "compound"}); err == nil {
		Te.Error("a label column absent from the header should be an error")
	}
	//a repeated header name would leave one column twice as long as the table
	if _, err := ReadCSV(writeCSV(Te, "a,b,a\n1.0,2.0,3.0\n")); err == nil {
		Te.Error("duplicate header names should be an error")
	}
}

func TestDescribe(Te *testing.T) {
	T := alkaneTable(Te)
	s, err := T.Describe("bp")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(s)
	if s.N != 6 || s.NaN != 0 {
		Te.Errorf("bp: n=%d missing=%d", s.N, s.NaN)
	}
	if s.Min != -161.5 || s.Max != 68.7 {
		Te.Errorf("bp range: %f to %f", s.Min, s.Max)
	}
	if math.Abs(s.Mean-(-31.3166666667)) > 1e-6 {
		Te.Errorf("bp mean: %f", s.Mean)
	}
	if s.Median != -42.1 {
		Te.Errorf("bp median: %f", s.Median)
	}
	s, err = T.Describe("mw")
	if err != nil {
		Te.Fatal(err)
	}
	if s.N != 5 || s.NaN != 1 {
		Te.Errorf("mw should have 5 values and 1 missing, got %d and %d", s.N, s.NaN)
	}
}

func TestCorrelation(Te *testing.T) {
	T := alkaneTable(Te)
	r, err := T.Correlation("mw", "bp")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("corr(mw, bp):", r)
	if r < 0.95 {
		Te.Errorf("mw and bp should correlate strongly in alkanes, got %f", r)
	}
	m, err := T.CorrMatrix("mw", "bp")
	if err != nil {
		Te.Fatal(err)
	}
	if m[0][0] != 1 || m[1][1] != 1 || m[0][1] != m[1][0] || m[0][1] != r {
		Te.Errorf("bad correlation matrix: %v", m)
	}
}

func TestDropNaN(Te *testing.T) {
	T := alkaneTable(Te)
	clean, err := T.DropNaN()
	if err != nil {
		Te.Fatal(err)
	}
	//butane (missing tpsa) and hexane (missing mw) go
	if clean.Len() != 4 {
		Te.Fatalf("DropNaN left %d rows, want 4", clean.Len())
	}
	labels := clean.Labels()
	for _, l := range labels {
		if l == "butane" || l == "hexane" {
			Te.Errorf("row %s should have been dropped", l)
		}
	}
	//dropping on a complete column keeps everything
	all, err := T.DropNaN("bp")
	if err != nil {
		Te.Fatal(err)
	}
	if all.Len() != 6 {
		Te.Errorf("DropNaN on bp left %d rows, want 6", all.Len())
	}
}

func TestSelect(Te *testing.T) {
	T := alkaneTable(Te)
	sub, err := T.Select("bp", "mw")
	if err != nil {
		Te.Fatal(err)
	}
	names := sub.Names()
	if len(names) != 2 || names[0] != "bp" || names[1] != "mw" {
		Te.Errorf("Select should keep the requested order, got %v", names)
	}
	if sub.Len() != T.Len() || len(sub.Labels()) != T.Len() {
		Te.Error("Select should keep all rows and their labels")
	}
	if _, err := sub.Column("tpsa"); err == nil {
		Te.Error("the unselected column should be gone")
	}
	if _, err := T.Select("nope"); err == nil {
		Te.Error("selecting a missing column should be an error")
	}
}

func TestHistogram(Te *testing.T) {
	T := alkaneTable(Te)
	H, err := T.HistogramColumn("mw", 5)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(H)
	if H.Total() != 5 {
		Te.Errorf("histogram counted %d points, want 5 (NaN skipped)", H.Total())
	}
	//the five alkane weights are evenly spread, one per bin
	for i, c := range H.Counts() {
		if c != 1 {
			Te.Errorf("bin %d has count %f, want 1", i, c)
		}
	}
	H.Normalize()
	var sum float64
	for _, c := range H.Counts() {
		sum += c
	}
	if math.Abs(sum-1) > 1e-12 {
		Te.Errorf("normalized counts sum to %f", sum)
	}
	//adding to a normalized histogram keeps it normalized
	H.Add(20.0)
	if !H.Normalized() || H.Total() != 6 {
		Te.Errorf("after Add: normalized %v, total %d", H.Normalized(), H.Total())
	}
	sum = 0
	for _, c := range H.Counts() {
		sum += c
	}
	if math.Abs(sum-1) > 1e-12 {
		Te.Errorf("counts should still sum to 1, got %f", sum)
	}
	H.UnNormalize()
	if H.Counts()[0] != 2 {
		Te.Errorf("the first bin should hold methane plus the added point, got %f", H.Counts()[0])
	}
}

/*
 * read_test.go, part of c3d-book
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

package spectrum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const specdata = `# 1H spectrum, simulated
chemical_shift,intensity
9.0,0.01
8.0,0.02
7.0,5.30
6.0,0.04
5.0,0.01
`

func writeSpec(Te *testing.T, name, data string) string {
	full := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(full, []byte(data), 0644); err != nil {
		Te.Fatal(err)
	}
	return full
}

func TestRead(Te *testing.T) {
	name := writeSpec(Te, "spec.csv", specdata)
	S, err := Read(name, ReadOptions{SkipHeader: 2})
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 5 {
		Te.Fatalf("read %d points, want 5", S.Len())
	}
	if !S.Descending() {
		Te.Error("NMR axis should come out descending")
	}
	if S.XAt(2) != 7.0 || S.YAt(2) != 5.30 {
		Te.Errorf("point 2: got (%f, %f)", S.XAt(2), S.YAt(2))
	}
	//comment lines are dropped wherever they appear
	name2 := writeSpec(Te, "commented.csv", "# a comment\n9.0,0.01\n# another\n8.0,0.02\n7.0,5.30\n")
	S2, err := Read(name2, ReadOptions{Comment: "#"})
	if err != nil {
		Te.Fatal(err)
	}
	if S2.Len() != 3 {
		Te.Errorf("comment handling gave %d points, want 3", S2.Len())
	}
}

//TestReadWhitespace checks the whitespace-delimited path and column picking.
func TestReadWhitespace(Te *testing.T) {
	data := "0   9.0  0.01\n1   8.0  0.02\n2   7.0  5.30\n"
	name := writeSpec(Te, "spec.dat", data)
	S, err := Read(name, ReadOptions{XColumn: 1, YColumn: 2})
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 3 || S.XAt(0) != 9.0 || S.YAt(2) != 5.30 {
		Te.Errorf("unexpected spectrum: len %d", S.Len())
	}
}

func TestReadGzip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "spec.csv.gz")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("9.0,0.01\n8.0,0.02\n7.0,5.30\n")); err != nil {
		Te.Fatal(err)
	}
	gz.Close()
	f.Close()
	S, err := Read(name)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 3 || S.YAt(2) != 5.30 {
		Te.Errorf("gzip round trip lost data: len %d", S.Len())
	}
}

func TestReadErrors(Te *testing.T) {
	if _, err := Read(filepath.Join(Te.TempDir(), "nope.csv")); err == nil {
		Te.Error("a missing file should be an error")
	}
	name := writeSpec(Te, "bad.csv", "9.0,0.01\noops,0.02\n")
	_, err := Read(name)
	if err == nil {
		Te.Fatal("a non-numeric field should be an error")
	}
	serr, ok := err.(Error)
	if !ok {
		Te.Fatalf("wrong error type %T", err)
	}
	if serr.FileName() != name {
		Te.Errorf("the error should carry the file name, got %q", serr.FileName())
	}
}

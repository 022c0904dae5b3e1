/*
 * read.go, part of c3d-book
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//ReadOptions controls the parsing of delimited spectrum files. The zero
//value reads a whitespace- or comma-separated two-column file with no
//header.
type ReadOptions struct {
	SkipHeader int    //lines to drop unconditionally at the start of the file
	Comment    string //lines starting with this prefix are dropped, if non-empty
	XColumn    int    //column index of the chemical shift, 0-based
	YColumn    int    //column index of the intensity, 0-based
}

//Read reads a two-column delimited text file (chemical shift, intensity)
//and returns the spectrum it contains. Columns may be separated by
//whitespace or commas. Files ending in ".gz" are decompressed on the fly.
//Options can be given to skip header lines, drop comments, or pick
//columns out of a wider table.
func Read(filename string, opts ...ReadOptions) (*Spectrum, error) {
	var o ReadOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.YColumn == 0 && o.XColumn == 0 {
		o.YColumn = 1
	}
	specfile, err := os.Open(filename)
	if err != nil {
		return nil, Error{fmt.Sprintf("unable to open: %v", err), filename, []string{"Read"}}
	}
	defer specfile.Close()
	var r io.Reader = specfile
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(specfile)
		if err != nil {
			return nil, Error{fmt.Sprintf("bad gzip data: %v", err), filename, []string{"Read"}}
		}
		defer gz.Close()
		r = gz
	}
	x, y, err := parseColumns(r, o, filename)
	if err != nil {
		return nil, err
	}
	S, err := New(x, y)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return S, nil
}

func parseColumns(r io.Reader, o ReadOptions, filename string) ([]float64, []float64, error) {
	x := make([]float64, 0, 1024)
	y := make([]float64, 0, 1024)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if lineno <= o.SkipHeader || line == "" {
			continue
		}
		if o.Comment != "" && strings.HasPrefix(line, o.Comment) {
			continue
		}
		fields := splitDelimited(line)
		if len(fields) <= o.XColumn || len(fields) <= o.YColumn {
			return nil, nil, Error{fmt.Sprintf("line %d has %d columns, need %d", lineno, len(fields), max(o.XColumn, o.YColumn)+1), filename, []string{"Read"}}
		}
		xv, err := strconv.ParseFloat(fields[o.XColumn], 64)
		if err != nil {
			return nil, nil, Error{fmt.Sprintf("bad x value in line %d: %v", lineno, err), filename, []string{"Read"}}
		}
		yv, err := strconv.ParseFloat(fields[o.YColumn], 64)
		if err != nil {
			return nil, nil, Error{fmt.Sprintf("bad y value in line %d: %v", lineno, err), filename, []string{"Read"}}
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, Error{err.Error(), filename, []string{"Read"}}
	}
	return x, y, nil
}

//splits on commas if the line has any, otherwise on whitespace.
func splitDelimited(line string) []string {
	if strings.Contains(line, ",") {
		raw := strings.Split(line, ",")
		fields := make([]string, 0, len(raw))
		for _, f := range raw {
			fields = append(fields, strings.TrimSpace(f))
		}
		return fields
	}
	return strings.Fields(line)
}

//errDecorate decorates err with the caller name if it implements the
//c3d Error interface. Same helper as in the root package.
func errDecorate(err error, caller string) error {
	type decorator interface {
		Decorate(string) []string
	}
	if err2, ok := err.(decorator); ok {
		err2.Decorate(caller)
	}
	return err
}

/*
 * xyz.go, part of c3d-book
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

package c3d

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//XYZRead reads an XYZ structure file and returns the molecule it contains.
//Only the first geometry in a multi-geometry file is read. The comment line
//(second line of the file) is skipped.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, &CError{fmt.Sprintf("c3d.XYZRead: unable to open %s: %v", xyzname, err), []string{"XYZRead"}}
	}
	defer xyzfile.Close()
	xyz := bufio.NewReader(xyzfile)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, &CError{fmt.Sprintf("c3d.XYZRead: ill-formatted XYZ file %s", xyzname), []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, &CError{fmt.Sprintf("c3d.XYZRead: ill-formatted XYZ file %s: bad atom count", xyzname), []string{"XYZRead"}}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	if _, err := xyz.ReadString('\n'); err != nil { //the comment line
		return nil, &CError{fmt.Sprintf("c3d.XYZRead: ill-formatted XYZ file %s: missing comment line", xyzname), []string{"XYZRead"}}
	}
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && line == "" {
			return nil, &CError{fmt.Sprintf("c3d.XYZRead: %s ends at atom %d of %d", xyzname, i, natoms), []string{"XYZRead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &CError{fmt.Sprintf("c3d.XYZRead: line %d in file %s ill-formed", i+3, xyzname), []string{"XYZRead"}}
		}
		at := new(Atom)
		at.Symbol = fields[0]
		at.Name = fields[0]
		at.ID = i + 1
		at.Mass = SymbolMass[at.Symbol] //zero if unknown; MW reports it later
		atoms[i] = at
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, &CError{fmt.Sprintf("c3d.XYZRead: bad coordinate in line %d of %s: %v", i+3, xyzname, err), []string{"XYZRead"}}
			}
		}
	}
	return NewMolecule(atoms, mat.NewDense(natoms, 3, coords))
}

//XYZWrite writes the molecule mol to an XYZ file with name xyzname, which
//will be created. If the file exists it will be overwritten.
func XYZWrite(xyzname string, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return &CError{fmt.Sprintf("c3d.XYZWrite: %v", err), []string{"XYZWrite"}}
	}
	defer out.Close()
	fmt.Fprintf(out, "%-4d\n\n", mol.Len())
	for i, at := range mol.Atoms {
		_, err = fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f \n", at.Symbol, mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2))
		if err != nil {
			return &CError{fmt.Sprintf("c3d.XYZWrite: %v", err), []string{"XYZWrite"}}
		}
	}
	return nil
}

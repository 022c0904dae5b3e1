/*
 * c3d.go, part of c3d-book
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*Note: Some functions here panic instead of returning errors. This is because
 * they are "fundamental" functions: if something goes wrong in them, the program
 * is way-most likely wrong and should crash. The panics are related to using a
 * function on a nil object or accessing out-of-bounds fields.*/

//Atom contains the information for one atom in a molecule, except for the
//coordinates, which are kept in a separate matrix (one row per atom).
type Atom struct {
	Name   string  //a label, not necessarily the element
	ID     int     //number of the atom in the input file, starting from 1
	Index  int     //position of the atom in the molecule, starting from 0
	Symbol string  //element symbol
	Mass   float64 //in Daltons
	Charge float64 //partial charge, 0 if not read
	Bonds  []*Bond //bonds assigned to this atom, nil until AssignBonds is called
}

//Copy returns a copy of the Atom object. The Bonds slice is shared,
//not deep-copied, as bonds reference other atoms.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("c3d.Atom.Copy: attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.ID = A.ID
	Newat.Index = A.Index
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	Newat.Bonds = A.Bonds
	return Newat
}

//Molecule is a set of atoms plus their Cartesian coordinates, a N x 3
//matrix in Angstroms with one row per atom.
type Molecule struct {
	Atoms  []*Atom
	Coords *mat.Dense
}

//NewMolecule builds a molecule from the given atoms and coordinates.
//It returns an error if either is nil or if the number of coordinate
//rows doesn't match the number of atoms.
func NewMolecule(atoms []*Atom, coords *mat.Dense) (*Molecule, error) {
	if atoms == nil || coords == nil {
		return nil, &CError{"c3d.NewMolecule: nil atoms or coordinates", []string{"NewMolecule"}}
	}
	r, c := coords.Dims()
	if r != len(atoms) || c != 3 {
		return nil, &CError{fmt.Sprintf("c3d.NewMolecule: %d atoms but %dx%d coordinates", len(atoms), r, c), []string{"NewMolecule"}}
	}
	M := new(Molecule)
	M.Atoms = atoms
	M.Coords = coords
	M.FillIndexes()
	return M, nil
}

//Len returns the number of atoms in the molecule. Implements sort.Interface
//partially, and matches the goChem Atomer convention.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the atom at index i. It panics if i is out of range, as
//this is a fundamental function.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("c3d.Molecule.Atom: requested atom out of range")
	}
	return M.Atoms[i]
}

//FillIndexes sets the Index field of every atom to its current position
//in the molecule. Several functions (AssignBonds among them) need the
//indexes filled to work.
func (M *Molecule) FillIndexes() {
	for i, v := range M.Atoms {
		v.Index = i
	}
}

//Corrupted checks that the molecule is consistent: non-nil fields and
//matching atom/coordinate dimensions. Returns an error describing the
//problem, or nil.
func (M *Molecule) Corrupted() error {
	if M.Atoms == nil || M.Coords == nil {
		return &CError{"c3d.Molecule: nil atoms or coordinates", []string{"Corrupted"}}
	}
	r, c := M.Coords.Dims()
	if r != len(M.Atoms) || c != 3 {
		return &CError{fmt.Sprintf("c3d.Molecule: %d atoms but %dx%d coordinates", len(M.Atoms), r, c), []string{"Corrupted"}}
	}
	return nil
}

//MW returns the molecular weight of the molecule in Daltons. Atoms with
//zero mass (i.e. an element missing from the mass table) are reported
//as an error, not silently skipped.
func (M *Molecule) MW() (float64, error) {
	var mw float64
	for i, v := range M.Atoms {
		mass := v.Mass
		if mass == 0 {
			mass = SymbolMass[v.Symbol]
		}
		if mass == 0 {
			err := new(CError)
			err.msg = fmt.Sprintf("c3d.Molecule.MW: no mass for atom %d (%s)", i, v.Symbol)
			err.Decorate("MW")
			return 0, err
		}
		mw += mass
	}
	return mw, nil
}

//Coord returns a copy of the coordinates for the atom at index i, as a
//3-element slice. Panics if i is out of range.
func (M *Molecule) Coord(i int) []float64 {
	if i >= M.Len() {
		panic("c3d.Molecule.Coord: requested atom out of range")
	}
	c := make([]float64, 3)
	mat.Row(c, i, M.Coords)
	return c
}

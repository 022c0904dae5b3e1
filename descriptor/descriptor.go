/*
 * descriptor.go, part of c3d-book
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

//Package descriptor computes simple molecular descriptors from 3D
//structures: composition counts, bond counts and a couple of topological
//indices over the bond graph. These are the predictors the course feeds
//to the boiling-point regression; they are no RDKit, and don't try to be.
package descriptor

import (
	"fmt"
	"math"

	c3d "github.com/drsamchong/c3d-book"
)

//Set is the descriptor vector of one molecule. The fields are ordered;
//Names and Vector return them in that same order, so sets can be stacked
//into a regression design matrix.
type Set struct {
	MolWeight      float64
	HeavyAtoms     int
	Carbons        int
	Hydrogens      int
	Nitrogens      int
	Oxygens        int
	Halogens       int
	Bonds          int //between heavy atoms
	RotatableBonds int
	Wiener         float64 //Wiener index: sum of all heavy-atom graph distances
	EccConn        float64 //eccentric connectivity index
}

//Names returns the descriptor names, in vector order.
func Names() []string {
	return []string{"MolWeight", "HeavyAtoms", "Carbons", "Hydrogens", "Nitrogens",
		"Oxygens", "Halogens", "Bonds", "RotatableBonds", "Wiener", "EccConn"}
}

//Vector returns the descriptor values in the order given by Names.
func (S *Set) Vector() []float64 {
	return []float64{S.MolWeight, float64(S.HeavyAtoms), float64(S.Carbons),
		float64(S.Hydrogens), float64(S.Nitrogens), float64(S.Oxygens),
		float64(S.Halogens), float64(S.Bonds), float64(S.RotatableBonds),
		S.Wiener, S.EccConn}
}

func (S *Set) String() string {
	names := Names()
	vals := S.Vector()
	ret := ""
	for i, n := range names {
		ret += fmt.Sprintf("%s: %.4g  ", n, vals[i])
	}
	return ret
}

//Compute calculates the descriptor set of mol. If the molecule has no
//bonds assigned yet, bonds are assigned first from the geometry, which
//needs covalent radii for every element present.
func Compute(mol *c3d.Molecule) (*Set, error) {
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "Compute")
	}
	if !hasBonds(mol) {
		if err := c3d.AssignBonds(mol); err != nil {
			return nil, errDecorate(err, "Compute")
		}
	}
	S := new(Set)
	mw, err := mol.MW()
	if err != nil {
		return nil, errDecorate(err, "Compute")
	}
	S.MolWeight = mw
	for i := 0; i < mol.Len(); i++ {
		switch sym := mol.Atom(i).Symbol; {
		case sym == "H":
			S.Hydrogens++
		case sym == "C":
			S.Carbons++
		case sym == "N":
			S.Nitrogens++
		case sym == "O":
			S.Oxygens++
		case c3d.IsHalogen(sym):
			S.Halogens++
		}
		if mol.Atom(i).Symbol != "H" {
			S.HeavyAtoms++
		}
	}
	graph := NewHeavyGraph(mol)
	S.Bonds = heavyBondCount(graph)
	S.RotatableBonds = rotatableBonds(graph)
	S.Wiener, S.EccConn = topologicalIndices(graph)
	return S, nil
}

//Matrix stacks the descriptor vectors of several molecules into rows,
//in the order given by Names: a design matrix ready for the qspr
//package.
func Matrix(sets []*Set) [][]float64 {
	X := make([][]float64, len(sets))
	for i, s := range sets {
		X[i] = s.Vector()
	}
	return X
}

func hasBonds(mol *c3d.Molecule) bool {
	for _, at := range mol.Atoms {
		if len(at.Bonds) > 0 {
			return true
		}
	}
	return false
}

func heavyBondCount(H *HeavyGraph) int {
	n := 0
	for _, at := range H.Atoms {
		for _, b := range at.Bonds {
			if b.Cross(at).Symbol != "H" && b.Cross(at).Index > at.Index {
				n++
			}
		}
	}
	return n
}

//rotatableBonds counts the non-ring bonds between two non-terminal heavy
//atoms. Without bond orders this over-counts double bonds as rotatable;
//for the saturated molecules of the course data set the approximation
//holds up.
func rotatableBonds(H *HeavyGraph) int {
	n := 0
	for _, at := range H.Atoms {
		if H.Degree(at.Index) < 2 {
			continue
		}
		for _, b := range at.Bonds {
			other := b.Cross(at)
			if other.Symbol == "H" || other.Index <= at.Index {
				continue
			}
			if H.Degree(other.Index) < 2 {
				continue
			}
			if !H.InRing(at.Index, other.Index) {
				n++
			}
		}
	}
	return n
}

//topologicalIndices computes the Wiener index (sum of pairwise graph
//distances) and the eccentric connectivity index (sum over atoms of
//degree times eccentricity) in one pass over the all-pairs distances.
//Disconnected heavy-atom pairs (salts, say) contribute nothing.
func topologicalIndices(H *HeavyGraph) (wiener, eccConn float64) {
	if H.Order() < 2 {
		return 0, 0
	}
	dist := H.Distances()
	for i, a := range H.Atoms {
		ecc := 0.0
		for j, b := range H.Atoms {
			if i == j {
				continue
			}
			d := dist.Weight(int64(a.Index), int64(b.Index))
			if math.IsInf(d, 1) { //no path between the pair
				continue
			}
			if j > i {
				wiener += d
			}
			if d > ecc {
				ecc = d
			}
		}
		eccConn += float64(H.Degree(a.Index)) * ecc
	}
	return wiener, eccConn
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

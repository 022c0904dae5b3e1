/*
 * bonds.go, part of c3d-book
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
	"math"
	"sort"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond joins two atoms of a molecule. The same *Bond is appended to the
//Bonds slice of both atoms involved.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
}

//Cross returns, given one of the atoms in the bond, the atom in the
//other side of it.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("c3d.Bond.Cross: the origin atom given is not present in the bond") //this has to be a programming error, so a panic is warranted.
}

//returns a new *Bond slice with the bond of index id removed.
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds)-1)
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//RemoveBond removes the given bond from both of its atoms. It returns an
//error if the bond was not found in either atom.
func RemoveBond(b *Bond) error {
	lenb1 := len(b.At1.Bonds)
	lenb2 := len(b.At2.Bonds)
	b.At1.Bonds = takefromslice(b.At1.Bonds, b.Index)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b.Index)
	if len(b.At1.Bonds) == lenb1 || len(b.At2.Bonds) == lenb2 {
		err := new(CError)
		err.msg = fmt.Sprintf("c3d.RemoveBond: failed to remove bond index %d", b.Index)
		err.Decorate("RemoveBond")
		return err
	}
	return nil
}

//distance between the atoms in rows i and j of the molecule's coordinates.
func atomDist(M *Molecule, i, j int) float64 {
	dx := M.Coords.At(i, 0) - M.Coords.At(j, 0)
	dy := M.Coords.At(i, 1) - M.Coords.At(j, 1)
	dz := M.Coords.At(i, 2) - M.Coords.At(j, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

//AssignBonds assigns bonds to the molecule based on a simple distance
//criterion, similar to that described in DOI:10.1186/1758-2946-3-33:
//two atoms are bonded if their distance is under the sum of their covalent
//radii plus a tolerance, but not so close as to be an artifact. Atoms that
//end up with more bonds than their allowed maximum lose their longest
//bonds until they comply. The pairwise search might get slow for large
//systems; it is really not thought for proteins or macromolecules.
func AssignBonds(M *Molecule) error {
	M.FillIndexes()
	bonds := make([]*Bond, 0, 10)
	tot := M.Len()
	var nextIndex int
	for i := 0; i < tot; i++ {
		at1 := M.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			err := new(CError)
			err.msg = fmt.Sprintf("c3d.AssignBonds: couldn't find the covalent radius for %s %d", at1.Symbol, i)
			err.Decorate("AssignBonds")
			return err
		}
		for j := i + 1; j < tot; j++ {
			at2 := M.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				err := new(CError)
				err.msg = fmt.Sprintf("c3d.AssignBonds: couldn't find the covalent radius for %s %d", at2.Symbol, j)
				err.Decorate("AssignBonds")
				return err
			}
			d := atomDist(M, i, j)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b) //just to easily keep track of them.
				nextIndex++
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := M.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			err := RemoveBond(at.Bonds[len(at.Bonds)-1]) //we remove the longest bond
			if err != nil {
				return errDecorate(err, "AssignBonds")
			}
		}
	}
	return nil
}

//BondList returns all the distinct bonds in the molecule, in no particular
//order. AssignBonds (or manual assignment) must have been called before.
func (M *Molecule) BondList() []*Bond {
	seen := make(map[int]bool)
	ret := make([]*Bond, 0, M.Len())
	for _, at := range M.Atoms {
		for _, b := range at.Bonds {
			if !seen[b.Index] {
				seen[b.Index] = true
				ret = append(ret, b)
			}
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Index < ret[j].Index })
	return ret
}

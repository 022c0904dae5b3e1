/*
 * descriptor_test.go, part of c3d-book
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

package descriptor

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	c3d "github.com/drsamchong/c3d-book"
)

func buildMol(Te *testing.T, symbols []string, coords []float64) *c3d.Molecule {
	atoms := make([]*c3d.Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &c3d.Atom{Name: s, Symbol: s, ID: i + 1, Mass: c3d.SymbolMass[s]}
	}
	M, err := c3d.NewMolecule(atoms, mat.NewDense(len(symbols), 3, coords))
	if err != nil {
		Te.Fatal(err)
	}
	return M
}

func ethanol(Te *testing.T) *c3d.Molecule {
	return buildMol(Te,
		[]string{"C", "C", "O", "H", "H", "H", "H", "H", "H"},
		[]float64{
			0.0000, 0.0000, 0.0000,
			1.5120, 0.0000, 0.0000,
			2.0650, 1.3060, 0.0000,
			-0.3700, 1.0290, 0.0000,
			-0.3700, -0.5140, 0.8900,
			-0.3700, -0.5140, -0.8900,
			1.8820, -0.5140, 0.8900,
			1.8820, -0.5140, -0.8900,
			3.0240, 1.2640, 0.0000,
		})
}

//a bare carbon chain, the simplest molecule with a rotatable bond.
func carbonChain(Te *testing.T) *c3d.Molecule {
	return buildMol(Te,
		[]string{"C", "C", "C", "C"},
		[]float64{
			0.0, 0.0, 0.0,
			1.5, 0.0, 0.0,
			3.0, 0.0, 0.0,
			4.5, 0.0, 0.0,
		})
}

//an equilateral carbon triangle, cyclopropane-like, for the ring logic.
func carbonRing(Te *testing.T) *c3d.Molecule {
	return buildMol(Te,
		[]string{"C", "C", "C"},
		[]float64{
			0.00, 0.000, 0.0,
			1.50, 0.000, 0.0,
			0.75, 1.299, 0.0,
		})
}

func TestComputeEthanol(Te *testing.T) {
	S, err := Compute(ethanol(Te))
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(S)
	if math.Abs(S.MolWeight-46.069) > 0.01 {
		Te.Errorf("MolWeight: %f", S.MolWeight)
	}
	if S.HeavyAtoms != 3 || S.Carbons != 2 || S.Hydrogens != 6 || S.Oxygens != 1 {
		Te.Errorf("wrong composition: %v", S)
	}
	if S.Nitrogens != 0 || S.Halogens != 0 {
		Te.Errorf("phantom elements: %v", S)
	}
	if S.Bonds != 2 {
		Te.Errorf("ethanol has 2 heavy bonds, got %d", S.Bonds)
	}
	//both heavy bonds end in a terminal atom
	if S.RotatableBonds != 0 {
		Te.Errorf("rotatable bonds: %d", S.RotatableBonds)
	}
	//C-C=1, C-O=1, C..O=2
	if S.Wiener != 4 {
		Te.Errorf("Wiener: %f", S.Wiener)
	}
	//eccentricities 2,1,2 against degrees 1,2,1
	if S.EccConn != 6 {
		Te.Errorf("EccConn: %f", S.EccConn)
	}
}

func TestComputeChain(Te *testing.T) {
	S, err := Compute(carbonChain(Te))
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(S.MolWeight-48.044) > 0.01 {
		Te.Errorf("MolWeight: %f", S.MolWeight)
	}
	if S.Bonds != 3 {
		Te.Errorf("a 4-chain has 3 bonds, got %d", S.Bonds)
	}
	//only the middle bond has non-terminal atoms on both ends
	if S.RotatableBonds != 1 {
		Te.Errorf("rotatable bonds: %d", S.RotatableBonds)
	}
	if S.Wiener != 10 {
		Te.Errorf("Wiener: %f", S.Wiener)
	}
	if S.EccConn != 14 {
		Te.Errorf("EccConn: %f", S.EccConn)
	}
}

func TestRing(Te *testing.T) {
	mol := carbonRing(Te)
	S, err := Compute(mol)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Bonds != 3 {
		Te.Errorf("a triangle has 3 bonds, got %d", S.Bonds)
	}
	//every bond is in the ring, so despite all atoms having degree 2,
	//nothing rotates
	if S.RotatableBonds != 0 {
		Te.Errorf("ring bonds counted as rotatable: %d", S.RotatableBonds)
	}
	if S.Wiener != 3 {
		Te.Errorf("Wiener: %f", S.Wiener)
	}
	if S.EccConn != 6 {
		Te.Errorf("EccConn: %f", S.EccConn)
	}
	H := NewHeavyGraph(mol)
	if !H.InRing(0, 1) {
		Te.Error("triangle edges are ring bonds")
	}
	chain := carbonChain(Te)
	if err := c3d.AssignBonds(chain); err != nil {
		Te.Fatal(err)
	}
	HC := NewHeavyGraph(chain)
	if HC.InRing(1, 2) {
		Te.Error("a chain has no ring bonds")
	}
	if HC.InRing(0, 2) {
		Te.Error("InRing on a non-bond should be false")
	}
}

func TestMatrix(Te *testing.T) {
	S1, err := Compute(ethanol(Te))
	if err != nil {
		Te.Fatal(err)
	}
	S2, err := Compute(carbonChain(Te))
	if err != nil {
		Te.Fatal(err)
	}
	X := Matrix([]*Set{S1, S2})
	if len(X) != 2 || len(X[0]) != len(Names()) {
		Te.Fatalf("matrix shape: %d x %d", len(X), len(X[0]))
	}
	if X[0][0] != S1.MolWeight || X[1][9] != S2.Wiener {
		Te.Error("matrix entries out of order")
	}
}

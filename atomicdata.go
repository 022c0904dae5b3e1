/*
 * atomicdata.go, part of c3d-book
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

//SymbolMass assigns atomic masses, in Daltons, to element symbols.
//Only the elements that show up in the course data sets (small organic
//molecules, mostly) are present.
var SymbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.904,
	"Na": 22.990,
	"K":  39.098,
	"Mg": 24.305,
	"Ca": 40.078,
}

//A map for assigning covalent radii to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.4, //0.31 in the reference. H always has only one bond, so a longer radius doesn't hurt: the extra bonds get eliminated later by the max-bond check.
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Br": 1.2,
	"I":  1.39,
	"Na": 1.66,
	"K":  2.03,
	"Mg": 1.41,
	"Ca": 1.76,
}

//A map for checking that atoms don't have too many bonds.
//A value of 0 means undefined, i.e. that this atom shouldn't be
//checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"N":  0, //undefined, as charged N takes 4
	"O":  2,
	"F":  1,
	"Si": 4,
	"P":  0,
	"S":  0,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

//IsHalogen returns whether the symbol given corresponds to a halogen.
//Used by the descriptor package when counting composition.
func IsHalogen(symbol string) bool {
	switch symbol {
	case "F", "Cl", "Br", "I":
		return true
	}
	return false
}

/*
 * graph.go, part of c3d-book
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
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	c3d "github.com/drsamchong/c3d-book"
)

//The topological descriptors see the molecule as an undirected graph of
//heavy atoms: hydrogens are left out, as is conventional for indices
//like Wiener's. Node IDs are the Index fields of the atoms, so a graph
//only makes sense for the molecule it was built from.

//HeavyGraph is the hydrogen-suppressed bond graph of a molecule.
type HeavyGraph struct {
	G     *simple.UndirectedGraph
	Atoms []*c3d.Atom //the heavy atoms, Index fields matching node IDs
}

//NewHeavyGraph builds the hydrogen-suppressed graph of mol. Bonds must
//have been assigned already (c3d.AssignBonds does that from a geometry).
func NewHeavyGraph(mol *c3d.Molecule) *HeavyGraph {
	g := simple.NewUndirectedGraph()
	heavy := make([]*c3d.Atom, 0, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Symbol == "H" {
			continue
		}
		heavy = append(heavy, at)
		g.AddNode(simple.Node(at.Index))
	}
	for _, at := range heavy {
		for _, b := range at.Bonds {
			other := b.Cross(at)
			if other.Symbol == "H" || other.Index <= at.Index {
				continue //each heavy-heavy bond once
			}
			g.SetEdge(simple.Edge{F: simple.Node(at.Index), T: simple.Node(other.Index)})
		}
	}
	return &HeavyGraph{G: g, Atoms: heavy}
}

//Order returns the number of heavy atoms in the graph.
func (H *HeavyGraph) Order() int {
	return len(H.Atoms)
}

//Degree returns the number of heavy neighbours of the atom with the
//given index.
func (H *HeavyGraph) Degree(index int) int {
	return H.G.From(int64(index)).Len()
}

//Distances returns the all-pairs shortest path lengths of the graph, in
//bonds. Unit edge costs, so Dijkstra here is just a convenient BFS.
func (H *HeavyGraph) Distances() path.AllShortest {
	return path.DijkstraAllPaths(H.G)
}

//InRing reports whether the bond between the atoms with indexes a and b
//lies in a ring: that is, whether its endpoints stay connected when the
//bond itself is skipped.
func (H *HeavyGraph) InRing(a, b int) bool {
	if !H.G.HasEdgeBetween(int64(a), int64(b)) {
		return false
	}
	bf := traverse.BreadthFirst{
		Traverse: func(e graph.Edge) bool {
			u, v := e.From().ID(), e.To().ID()
			return !(u == int64(a) && v == int64(b)) && !(u == int64(b) && v == int64(a))
		},
	}
	found := bf.Walk(H.G, simple.Node(a), func(n graph.Node, _ int) bool {
		return n.ID() == int64(b)
	})
	return found != nil
}

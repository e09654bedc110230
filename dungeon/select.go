package dungeon

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvldungeon/delaunay"
	"github.com/katalvlaran/lvldungeon/geom"
	"github.com/katalvlaran/lvldungeon/prim_kruskal"
)

// triangulate fills a.candidates with Delaunay edges. When the
// tetrahedralization is undefined (fewer than four vertices) or leaves a
// vertex without an edge (flat input) the complete graph is used instead.
func (a *attempt) triangulate() {
	d, err := delaunay.Tetrahedralize(a.vertices)
	if err == nil && covers(d.Edges, a.vertices) {
		a.candidates = d.Edges
		return
	}
	a.log.Debug("delaunay fallback to complete graph",
		"vertices", len(a.vertices), "err", err)
	a.candidates = completeGraph(a.vertices)
}

// selectEdges keeps the MST from vertex 0 and each other candidate with
// probability LoopChance.
func (a *attempt) selectEdges() error {
	weighted := geom.Weigh(a.candidates)
	tree, err := prim_kruskal.Prim(weighted, a.vertices[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	chosen := mapset.New[geom.Edge]()
	a.selected = a.selected[:0]
	for _, e := range tree {
		chosen.Put(e.Edge)
		a.selected = append(a.selected, e)
	}
	for _, e := range weighted {
		if chosen.Has(e.Edge) {
			continue
		}
		// Draw for every remaining edge so the stream does not depend on
		// which edges the tree took.
		if a.rng.Float64() < a.cfg.LoopChance {
			chosen.Put(e.Edge)
			a.selected = append(a.selected, e)
		}
	}

	return nil
}

// validateReachability requires a selected edge at both spawn and exit.
func (a *attempt) validateReachability() error {
	if !touches(a.selected, a.vertices[0]) {
		return fmt.Errorf("%w: spawn %s", ErrUnreachable, a.vertices[0])
	}
	if !touches(a.selected, a.vertices[1]) {
		return fmt.Errorf("%w: exit %s", ErrUnreachable, a.vertices[1])
	}

	return nil
}

// cullDisconnected drops rooms that no selected edge touches. Their cells
// stay stamped in the grid.
func (a *attempt) cullDisconnected() {
	kept := a.rooms[:0]
	for _, r := range a.rooms {
		if touches(a.selected, r.Vertex) {
			kept = append(kept, r)
			continue
		}
		a.culled = append(a.culled, r)
		a.stats.RoomsCulled++
		a.log.Debug("room culled", "room", r.ID, "origin", r.Origin.String())
	}
	a.rooms = kept

	verts := a.vertices[:0]
	for _, v := range a.vertices {
		if touches(a.selected, v) {
			verts = append(verts, v)
		}
	}
	a.vertices = verts
}

// touches reports whether an endpoint of some edge lies within
// TouchRadiusSq of v.
func touches(edges []geom.WeightedEdge, v geom.Vertex) bool {
	for _, e := range edges {
		if geom.DistanceSq(e.U, v) < TouchRadiusSq || geom.DistanceSq(e.V, v) < TouchRadiusSq {
			return true
		}
	}

	return false
}

// covers reports whether every vertex is an endpoint of some edge.
func covers(edges []geom.Edge, vertices []geom.Vertex) bool {
	seen := mapset.New[geom.Vertex]()
	for _, e := range edges {
		seen.Put(e.U)
		seen.Put(e.V)
	}
	for _, v := range vertices {
		if !seen.Has(v) {
			return false
		}
	}

	return true
}

// completeGraph returns every vertex pair once, in index order.
func completeGraph(vertices []geom.Vertex) []geom.Edge {
	edges := make([]geom.Edge, 0, len(vertices)*(len(vertices)-1)/2)
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			edges = append(edges, geom.NewEdge(vertices[i], vertices[j]))
		}
	}

	return edges
}

// Package lvldungeon generates procedural 3D dungeon levels: rooms on a voxel
// grid joined by corridors and staircases.
//
// What is in the box?
//
//	geom/          Vertex, Edge, WeightedEdge and integer Cell primitives
//	pqueue/        generic indexed binary min-heap with stable ties
//	delaunay/      Bowyer–Watson 3D tetrahedralization
//	prim_kruskal/  naive-scan Prim MST plus a Kruskal reference
//	gridgraph/     VoxelGrid classification, components and reachability
//	astar/         reusable 12-neighbour corridor pathfinder
//	dungeon/       the generator: placement, edge selection, carving, retries
//	preview/       ASCII and PNG renderings of a generated level
//
// Quick start:
//
//	lvl, err := dungeon.Generate(dungeon.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	fmt.Print(preview.ASCII(lvl))
//
// Every random draw comes from one seeded source, so a seed and a
// configuration fully determine the level. See examples/ for a runnable
// walkthrough that loads a YAML configuration.
package lvldungeon

// Package voxellath lifts a voxel-world description into a route
// planner: decode the world, build its motion graph, optionally
// condense it into a hierarchical super-graph, then search, travel, and
// verify routes over it.
//
// The pipeline lives in subpackages, each usable standalone:
//
//	coordinate/  — 3-D coordinates, the six cardinal neighbors, the four
//	               moves, Manhattan distance
//	schematic/   — hex-encoded world decoding into per-voxel adjacency tags
//	graph/       — arena-indexed node/arc graph built from a schematic
//	condense/    — Tarjan condensation into a super-graph of strongly
//	               connected components
//	search/      — the twenty-one-mode node-level route search family
//	supersearch/ — the same search family run hierarchically over a
//	               super-graph, with lazy sub-route materialization
//	verify/      — exhaustive route-soundness checks over every pair
//	               of endpoints
//
// World wires these stages together behind a small facade so a
// caller does not have to wire five subpackages by hand:
//
//	w, err := voxellath.Load(data)
//	route, err := w.Search(search.Plan{Source: a, Target: b}, search.BFS)
//	w.Condense()
//	route, err = w.SuperSearch(plan, search.AStar, search.BFS)
package voxellath

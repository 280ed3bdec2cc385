// Package graph lifts a decoded schematic into the directed motion graph
// an agent walks: one node per standable voxel, one arc per legal move.
//
// The graph is an arena: Nodes is a flat slice and every arc names a
// neighbor by its index into that slice, never by pointer. This avoids
// the cyclic node/arc ownership (and matching new/delete pairs) of a
// pointer-linked graph — an index is just a number, safe to copy, and
// freed automatically with the slice.
package graph

// Package schematic decodes the .vox text format (spec.md §6) into a
// dense per-voxel classification grid.
//
// A world is an X×Y×Z header followed by Z layers of Y hex-packed rows.
// Layer 0 is the floor and never emits nodes; for every voxel at z≥1, a
// per-column state machine classifies the voxel as one of:
//
//	VoidTag    — no solid floor ever appears below this column.
//	SolidTag   — this voxel is itself solid.
//	NewNodeTag — first air voxel directly above a solid voxel: a node.
//	TwoWayTag  — one air voxel above a NewNodeTag: a one-step-up climb.
//	OneWayTag  — two or more air voxels above a NewNodeTag: a fall zone.
//
// Classification depends only on the solidity history of its own (x, y)
// column, never on the node graph being built from it, so Decode runs to
// completion before graph.Build ever looks at the result.
package schematic

// Package coordinate defines the voxel-lattice primitives shared by every
// other subpackage: a 3-D integer Coordinate with its six cardinal
// neighbors, and Move, the four-valued direction an agent can walk.
//
// Both types are small, comparable values. Coordinate is used directly as
// a map key throughout the module; Hash exists only for callers that want
// a stable, order-independent fingerprint (logging, dedup sets keyed by
// something other than the struct itself).
package coordinate

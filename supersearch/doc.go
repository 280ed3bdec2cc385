// Package supersearch runs the search family over a condensed
// super-graph instead of the node-level graph directly: one super-arc
// hop at a time, materializing each segment's actual route lazily via
// the node-level search package only once the destination super-node
// is reached.
//
// Bypasses straight to a node-level search when source and target share
// a super-node, since there is then nothing to condense over.
package supersearch

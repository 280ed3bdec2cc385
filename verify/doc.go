// Package verify exhaustively checks a search mode's soundness: for
// every ordered pair of endpoints, it runs the search, silently accepts
// an Untraversable verdict, and replays any returned route through
// graph.Travel to confirm it actually arrives where claimed.
//
// This is a regression guard, not a correctness proof for an unknown
// graph -- a route is only ever checked against the same arcs the
// search itself walked.
package verify

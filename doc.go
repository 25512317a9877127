// Package dlx implements Algorithm X over a dancing-links grid: given a
// problem that can enumerate its possibilities and constraints and decide
// which of each pair incide, Solver streams exact-cover solutions one at a
// time.
//
// A domain plugs in by implementing Problem[P, C]; this package never
// inspects P or C beyond indexing into the slices Possibilities and
// Constraints return. The grid itself is abstracted behind Backend so a
// domain (or caller) can choose the sparse linked implementation in package
// grid or the dense one in package bitgrid.
package dlx

// Package grid implements the sparse toroidal matrix used by Knuth's
// Dancing Links technique: a root sentinel circularly linked to column
// headers, each header circularly linked to the live nodes in its column,
// and each node horizontally linked to the rest of its row.
//
// Nodes live in a flat arena addressed by index rather than by pointer —
// index 0 is the root sentinel, indices 1..numColumns are column headers,
// and the remaining indices are the matrix's "1" entries. A Column handle
// is simply a header's node index; a Row handle is the node index of one
// entry in that row, which is enough to recover every other column the row
// touches via its horizontal links.
package grid

// Package step decodes raw bytes into the diagonal moves of a drunken bishop.
//
// What:
//
//   - Direction is a closed enumeration of the four diagonal moves:
//     NorthWest, NorthEast, SouthWest, SouthEast.
//   - Decode splits every byte into four 2-bit groups, least significant
//     pair first, bytes in input order.
//
// Bit mapping:
//
//	00 → NW    01 → NE
//	10 → SW    11 → SE
//
// Why:
//
//   - Fingerprint art: the walk of a bishop driven by a key digest makes
//     small differences in the digest visible at a glance.
//
// Complexity:
//
//   - Decode: O(min(limit, 4·n)) time and memory, n = len(data).
//
// Decode is pure and total: it never fails and never pads. A limit larger
// than the number of available moves yields only the available moves.
package step

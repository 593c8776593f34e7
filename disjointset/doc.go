// Package disjointset provides a Disjoint-Set Forest (union-find) over the
// dense integer elements 0..n-1.
//
// What:
//
//   - Forest partitions n elements into disjoint sets.
//   - Find resolves an element to the representative (root) of its set.
//   - Union merges the sets containing two elements.
//
// Representation:
//
//	Each slot holds either a negative value (the slot is a root and -value is
//	the size of its set) or a non-negative parent index.
//
// Policies:
//
//   - Union-by-size: the smaller tree is attached under the larger root; on a
//     tie the root of b is attached under the root of a.
//   - Path compression: Find is iterative (no recursion); a first pass walks to
//     the root, a second pass redirects every visited element to it.
//
// Complexity:
//
//   - Find, Union: amortized O(α(n)), α = inverse Ackermann.
//   - Memory: O(n).
//
// Element indices are preconditions and are not validated: an index outside
// [0, n) panics like any out-of-range slice access.
package disjointset

// SPDX-License-Identifier: MIT

// Package arena provides Arena, a sparse index store that maps small integer
// handles to payloads and recycles the handles of removed entries.
//
// Overview:
//
//   - Insert hands out a Handle: a previously freed one if any exists,
//     otherwise the next never-used integer. O(1) amortized.
//   - Remove detaches a payload and returns its handle to the free pool.
//   - Handles are opaque lookup keys. They carry no meaning beyond
//     "currently valid in this arena" and must never be treated as stable
//     identities across a Remove/Insert cycle.
//
// Storage layout:
//
//	slots []T           dense backing array, indexed by Handle
//	live  *bitset.BitSet occupancy, bit h set iff h is live
//	free  []Handle      LIFO pool of freed handles
//
// Which freed handle Insert picks is not part of the contract. Callers that
// need ordered enumeration use Handles or All, which walk the occupancy
// bitset in ascending order.
//
// Thread safety:
//
//   - Arena is not safe for concurrent mutation. Synchronize externally.
//
// Complexity:
//
//   - Insert, Remove, Get, Ref, Contains, Len: O(1) (Insert amortized).
//   - Handles, All: O(Span/64 + Len).
package arena

// Package bitset implements a fixed-length, word-packed mapping from
// non-negative indices to booleans that keeps its cardinality (number of set
// bits) up to date at all times.
//
// What:
//
//   - Construction: New (all unset), NewAllSet, NewAllSetBut, NewAllUnsetBut, FromWords.
//   - Single-bit mutation: SetBit / UnsetBit return the previous state and adjust
//     the cardinality by ±1 only on an actual change.
//   - Bulk algebra: And, Or, AndNot, Not. Each recomputes the cardinality with a
//     full popcount pass afterwards; Or grows the receiver to the operand length.
//   - Relations: IsDisjointWith, IntersectsWith, IsSubsetOf, IsSupersetOf. The
//     shorter operand is treated as zero-padded.
//   - Scanning: FirstSet/NextSet and FirstUnset/NextUnset mask the current word,
//     then skip whole words, so the cost is proportional to words skipped.
//   - Iteration: Iter returns an iter.Seq[int] of set indices in ascending order;
//     every range over it starts from the beginning.
//
// Invariants:
//
//   - Cardinality() == popcount of all bits below Len().
//   - Bits at positions ≥ Len() in the last word are always zero.
//
// Errors:
//
//   - ErrIndexOutOfRange is raised through panic for i < 0 or i ≥ Len(). Such an
//     access is a caller defect, not a recoverable condition.
//
// Complexity:
//
//   - SetBit/UnsetBit/At: O(1)
//   - And/Or/AndNot/Not/Resize/relations: O(Len()/64)
//   - Iter: O(Len()/64 + Cardinality())
package bitset

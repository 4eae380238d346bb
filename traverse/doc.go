// Package traverse provides the lazy query iterator over a bvh.Bvh, the
// reusable Stack it scans with, and the Tester contract a predicate
// supplies. See the sibling predicate package for ready-made Testers
// (volume overlap, ray cast, shape sweep).
//
// Traverse returns an iter.Seq[T]: range over it to pull surviving payloads
// one at a time, and stop ranging (break, or simply discard the Seq) to
// terminate the query early — there is no separate cancellation mechanism,
// because none is needed.
//
// Complexity: each node and each item is visited at most once per query;
// a query over a Bvh holding n items does O(n) work in the worst case
// (predicate rejects nothing) and less whenever the predicate prunes
// subtrees.
package traverse

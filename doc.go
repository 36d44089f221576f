package seqtrie

/*

# Seqtrie primitives for Forestrie (ternary sequence store, abstraction classes)

This package provides an in-memory store for finite sequences over the
3-symbol alphabet {'0','1','2'}, held as a trie with three children per node,
plus an abstraction-class subsystem layered on the same nodes: disjoint,
nameable groups of sequences that can be merged and relabelled as a unit.

It follows the same style as `go-merklelog/urkle` and `go-merklelog/bloom`:

- small, composable functions
- explicit byte layouts for the snapshot format
- package sentinel errors, wrapped with detail at the failure site

## Core invariants

1. The known set is prefix closed: a sequence is stored if and only if every
   one of its non-empty prefixes is stored. Insert creates all missing
   prefixes; Remove detaches the whole subtree below the removed sequence.
2. A node created as an ancestor prefix is indistinguishable from one
   inserted explicitly. There is no terminal marker.
3. The store owns exactly one class counter. Class ids are minted as
   counter+1 with the counter incremented strictly before any node is
   tagged, and ids are never reused once superseded by a merge.
4. The root represents the empty prefix and is never addressable: the empty
   sequence is invalid input to every operation, so the root is never
   classified or named.

## Sweeps

Renaming a class and merging two classes both require retagging every node
in the tree whose class id matches a target id. Both are single synchronous
depth-first passes; the match predicate is id-based, not structural, so the
visit order is immaterial and every node is visited exactly once. The
replacement name is materialized once, before the sweep starts, so the
sweep itself cannot fail and the operation is atomic (prepare, then apply).

The sweeps mutate nodes while recursing, so the store is not re-entrant:
operations must not be invoked on the same store while a sweep is in
flight. The store assumes exactly one caller; there is no internal locking.

## Node budget

Go has no recoverable allocation failure, so exhaustion is modelled the way
the sibling packages model full preallocated regions: an optional node
budget (`WithMaxNodes`). An insert that would exceed the budget fails with
ErrStoreFull and detaches everything it created first, leaving the store
exactly as it was before the call.

## Snapshot (SEQ1)

`EncodeSnapshotV1`/`DecodeSnapshotV1` capture and restore the whole store
state in caller-owned buffers, mirroring `urkle.FrontierStateV1`: a fixed
magic/version header followed by preorder node records. Where the bytes
ultimately live is the caller's concern.

The V1 suffix means the function implements snapshot format version 1 - a
specific header layout and record encoding. Incompatible changes arrive as
V2 side-by-side rather than silently breaking previously captured state.

*/

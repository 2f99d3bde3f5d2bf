package flattree

import "math/bits"

// FullRoots returns the roots of the maximal perfect subtrees covering a
// tree whose left most treeSize indices have been written. treeSize is the
// one past the end boundary of the flat address space, so a log holding n
// leaves passes 2*n.
//
// The n leaves decompose exactly as n decomposes into powers of two, one
// maximal perfect subtree per set bit, largest first. The returned roots
// are therefore strictly ordered by increasing left span and no two of them
// are ever siblings, a sibling pair would have merged into its parent.
//
// So for a log of 10 leaves, FullRoots(20) returns [7, 17],
//
//	3              7
//	             /   \
//	           /       \
//	         /           \
//	2       3             11
//	      /   \          /   \
//	1    1     5        9     13        17
//	    / \   / \      / \    / \      /  \
//	0  0   2 4   6    8  10 12   14  16    18
//
// the perfect depth 3 subtree over leaves 0..14 and the depth 1 subtree
// over leaves 16 and 18.
//
// FullRoots(0) returns an empty result. An odd treeSize is not a valid
// boundary, it would split an interleaved interior node, and returns nil.
func FullRoots(treeSize uint64) []uint64 {
	if treeSize&1 != 0 {
		return nil
	}
	return AppendFullRoots(treeSize, make([]uint64, 0, bits.OnesCount64(treeSize>>1)))
}

// AppendFullRoots appends the full subtree roots for treeSize to roots and
// returns the extended slice, for callers that want to control allocation.
// As with FullRoots, an odd treeSize returns nil.
func AppendFullRoots(treeSize uint64, roots []uint64) []uint64 {
	if treeSize&1 != 0 {
		return nil
	}

	// Greedily take the largest perfect subtree that fits in the leaves
	// that remain. Each iteration consumes the top set bit of remaining, so
	// this loops once per set bit of the leaf count.
	remaining := treeSize >> 1
	offset := uint64(0)
	for remaining > 0 {
		leaves := uint64(1) << (bits.Len64(remaining) - 1)
		roots = append(roots, offset+leaves-1)
		offset += 2 * leaves
		remaining -= leaves
	}
	return roots
}

package flattree

import "math/bits"

// Index returns the flat tree index of the node at the given depth and
// offset. Leaves are depth 0, so Index(0, o) is the even index 2*o, and the
// interior node immediately above the first two leaves is Index(1, 0) == 1.
//
// The coordinates must describe an address representable in 64 bits. Index
// panics if they do not, silent wraparound would alias two distinct nodes
// onto one storage slot.
func Index(depth, offset uint64) uint64 {
	if depth > 63 || (offset != 0 && uint64(bits.Len64(offset))+depth > 63) {
		panic("flattree: node coordinates overflow 64 bits")
	}
	return offset<<(depth+1) | (1<<depth - 1)
}

// Depth returns the depth of the node at index i. Leaves (even i) are depth
// 0. The depth is the count of trailing one bits of i, equivalently the
// trailing zero count of i+1.
func Depth(i uint64) uint64 {
	return uint64(bits.TrailingZeros64(i + 1))
}

// Offset returns the left to right position of the node at index i among
// all nodes at its depth.
func Offset(i uint64) uint64 {
	return OffsetWithDepth(i, Depth(i))
}

// OffsetWithDepth is Offset for callers that already know the depth of i.
func OffsetWithDepth(i, depth uint64) uint64 {
	return i >> (depth + 1)
}

// Parent returns the index of the parent of i. The left and right members
// of a sibling pair share the same parent.
func Parent(i uint64) uint64 {
	return ParentWithDepth(i, Depth(i))
}

// ParentWithDepth is Parent for callers that already know the depth of i.
func ParentWithDepth(i, depth uint64) uint64 {
	return Index(depth+1, OffsetWithDepth(i, depth)>>1)
}

// Sibling returns the index of the other node sharing a parent with i.
func Sibling(i uint64) uint64 {
	return SiblingWithDepth(i, Depth(i))
}

// SiblingWithDepth is Sibling for callers that already know the depth of i.
func SiblingWithDepth(i, depth uint64) uint64 {
	return Index(depth, OffsetWithDepth(i, depth)^1)
}

// Uncle returns the sibling of the parent of i.
func Uncle(i uint64) uint64 {
	return UncleWithDepth(i, Depth(i))
}

// UncleWithDepth is Uncle for callers that already know the depth of i.
func UncleWithDepth(i, depth uint64) uint64 {
	return SiblingWithDepth(ParentWithDepth(i, depth), depth+1)
}

// LeftChild returns the index of the left child of i. If i is a leaf there
// is no child and LeftChild returns false.
func LeftChild(i uint64) (uint64, bool) {
	return LeftChildWithDepth(i, Depth(i))
}

// LeftChildWithDepth is LeftChild for callers that already know the depth of i.
func LeftChildWithDepth(i, depth uint64) (uint64, bool) {
	if depth == 0 {
		return 0, false
	}
	return Index(depth-1, OffsetWithDepth(i, depth)<<1), true
}

// RightChild returns the index of the right child of i. If i is a leaf
// there is no child and RightChild returns false.
func RightChild(i uint64) (uint64, bool) {
	return RightChildWithDepth(i, Depth(i))
}

// RightChildWithDepth is RightChild for callers that already know the depth of i.
func RightChildWithDepth(i, depth uint64) (uint64, bool) {
	if depth == 0 {
		return 0, false
	}
	return Index(depth-1, OffsetWithDepth(i, depth)<<1|1), true
}

// Children returns both children of i, left then right. If i is a leaf
// there are no children and Children returns false.
func Children(i uint64) (uint64, uint64, bool) {
	return ChildrenWithDepth(i, Depth(i))
}

// ChildrenWithDepth is Children for callers that already know the depth of i.
func ChildrenWithDepth(i, depth uint64) (uint64, uint64, bool) {
	if depth == 0 {
		return 0, 0, false
	}
	off := OffsetWithDepth(i, depth) << 1
	return Index(depth-1, off), Index(depth-1, off|1), true
}

// LeftSpan returns the index of the left most leaf under the subtree rooted
// at i. For a leaf that is i itself.
func LeftSpan(i uint64) uint64 {
	return LeftSpanWithDepth(i, Depth(i))
}

// LeftSpanWithDepth is LeftSpan for callers that already know the depth of i.
func LeftSpanWithDepth(i, depth uint64) uint64 {
	return OffsetWithDepth(i, depth) * (2 << depth)
}

// RightSpan returns the index of the right most leaf under the subtree
// rooted at i. For a leaf that is i itself.
func RightSpan(i uint64) uint64 {
	return RightSpanWithDepth(i, Depth(i))
}

// RightSpanWithDepth is RightSpan for callers that already know the depth of i.
func RightSpanWithDepth(i, depth uint64) uint64 {
	return (OffsetWithDepth(i, depth)+1)*(2<<depth) - 2
}

// Spans returns the inclusive leaf index range covered by the subtree
// rooted at i, left most leaf first.
func Spans(i uint64) (uint64, uint64) {
	return SpansWithDepth(i, Depth(i))
}

// SpansWithDepth is Spans for callers that already know the depth of i.
func SpansWithDepth(i, depth uint64) (uint64, uint64) {
	return LeftSpanWithDepth(i, depth), RightSpanWithDepth(i, depth)
}

// Count returns the total number of nodes, leaves and interior both, in the
// subtree rooted at i. A subtree of depth d always holds 2^(d+1)-1 nodes.
func Count(i uint64) uint64 {
	return CountWithDepth(i, Depth(i))
}

// CountWithDepth is Count for callers that already know the depth of i.
func CountWithDepth(_, depth uint64) uint64 {
	return (2 << depth) - 1
}

package flattree

// Iterator steps through the flat address space without recomputing the
// depth and offset of the current node on every move. It tracks the node
// index, the offset of the node at its depth, and the stride between
// adjacent nodes at that depth, which for depth d is 2^(d+1). Every move is
// a constant number of additions and shifts.
//
// The zero value is positioned on leaf 0 and is ready to use. Like the
// package level functions, an iterator happily walks to addresses nothing
// has been written to yet, knowing what lives where is the caller's
// business.
type Iterator struct {
	index  uint64
	offset uint64
	factor uint64
}

// NewIterator returns an iterator positioned on the node at index i.
func NewIterator(i uint64) *Iterator {
	it := &Iterator{}
	it.Seek(i)
	return it
}

// Seek repositions the iterator on the node at index i.
func (it *Iterator) Seek(i uint64) {
	it.index = i
	if i&1 != 0 {
		depth := Depth(i)
		it.offset = OffsetWithDepth(i, depth)
		it.factor = 2 << depth
	} else {
		it.offset = i >> 1
		it.factor = 2
	}
}

// Index returns the index of the current node.
func (it *Iterator) Index() uint64 {
	return it.index
}

// Offset returns the offset of the current node at its depth.
func (it *Iterator) Offset() uint64 {
	return it.offset
}

// IsLeft reports whether the current node is a left child of its parent.
func (it *Iterator) IsLeft() bool {
	return it.offset&1 == 0
}

// IsRight reports whether the current node is a right child of its parent.
func (it *Iterator) IsRight() bool {
	return it.offset&1 == 1
}

// Next moves to the next node at the same depth and returns its index.
func (it *Iterator) Next() uint64 {
	it.offset++
	it.index += it.factor
	return it.index
}

// Prev moves to the previous node at the same depth and returns its index.
// At offset 0 there is no previous node and the iterator stays put.
func (it *Iterator) Prev() uint64 {
	if it.offset == 0 {
		return it.index
	}
	it.offset--
	it.index -= it.factor
	return it.index
}

// Sibling moves to the other node sharing the current node's parent and
// returns its index.
func (it *Iterator) Sibling() uint64 {
	if it.IsLeft() {
		return it.Next()
	}
	return it.Prev()
}

// Parent moves to the parent of the current node and returns its index.
func (it *Iterator) Parent() uint64 {
	if it.offset&1 != 0 {
		it.index -= it.factor >> 1
		it.offset = (it.offset - 1) >> 1
	} else {
		it.index += it.factor >> 1
		it.offset >>= 1
	}
	it.factor <<= 1
	return it.index
}

// LeftChild moves to the left child of the current node and returns its
// index. A leaf has no children and the iterator stays put.
func (it *Iterator) LeftChild() uint64 {
	if it.factor == 2 {
		return it.index
	}
	it.factor >>= 1
	it.index -= it.factor >> 1
	it.offset <<= 1
	return it.index
}

// RightChild moves to the right child of the current node and returns its
// index. A leaf has no children and the iterator stays put.
func (it *Iterator) RightChild() uint64 {
	if it.factor == 2 {
		return it.index
	}
	it.factor >>= 1
	it.index += it.factor >> 1
	it.offset = it.offset<<1 | 1
	return it.index
}

// LeftSpan moves to the left most leaf under the current node and returns
// its index.
func (it *Iterator) LeftSpan() uint64 {
	it.index = it.index - (it.factor >> 1) + 1
	it.offset = it.index >> 1
	it.factor = 2
	return it.index
}

// RightSpan moves to the right most leaf under the current node and returns
// its index.
func (it *Iterator) RightSpan() uint64 {
	it.index = it.index + (it.factor >> 1) - 1
	it.offset = it.index >> 1
	it.factor = 2
	return it.index
}

// NextTree moves to the leaf immediately after the subtree rooted at the
// current node and returns its index.
func (it *Iterator) NextTree() uint64 {
	it.index = it.index + (it.factor >> 1) + 1
	it.offset = it.index >> 1
	it.factor = 2
	return it.index
}

// FullRoot is the incremental counterpart of FullRoots. With the iterator
// on the left most unconsumed leaf it climbs to the root of the largest
// perfect subtree that fits below the treeSize boundary and returns true.
// It returns false once the boundary is reached, or if the iterator sits on
// an interior node. Walking the whole decomposition looks like
//
//	it := flattree.NewIterator(0)
//	for it.FullRoot(treeSize) {
//		roots = append(roots, it.Index())
//		it.NextTree()
//	}
func (it *Iterator) FullRoot(treeSize uint64) bool {
	if treeSize <= it.index || it.index&1 != 0 {
		return false
	}
	// climb while the parent's subtree still fits below the boundary
	for treeSize > it.index+it.factor+(it.factor>>1) {
		it.index += it.factor >> 1
		it.offset >>= 1
		it.factor <<= 1
	}
	return true
}

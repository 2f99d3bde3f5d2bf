package flattree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIteratorWalk(t *testing.T) {
	it := NewIterator(0)

	assert.Equal(t, uint64(0), it.Index())
	assert.Equal(t, uint64(1), it.Parent())
	assert.Equal(t, uint64(3), it.Parent())
	assert.Equal(t, uint64(7), it.Parent())
	assert.Equal(t, uint64(11), it.RightChild())
	assert.Equal(t, uint64(9), it.LeftChild())
	assert.Equal(t, uint64(13), it.Next())
	assert.Equal(t, uint64(12), it.LeftSpan())
}

func TestIteratorInteriorStart(t *testing.T) {
	// seeking to an interior node must leave the iterator in exactly the
	// state the equivalent walk from the leaf would have produced
	it := NewIterator(1)

	assert.Equal(t, uint64(1), it.Index())
	assert.Equal(t, uint64(3), it.Parent())
	assert.Equal(t, uint64(7), it.Parent())
	assert.Equal(t, uint64(11), it.RightChild())
	assert.Equal(t, uint64(9), it.LeftChild())
	assert.Equal(t, uint64(13), it.Next())
	assert.Equal(t, uint64(12), it.LeftSpan())
}

func TestIteratorZeroValue(t *testing.T) {
	var it Iterator
	it.Seek(0)
	assert.Equal(t, uint64(0), it.Index())
	assert.Equal(t, uint64(2), it.Next())
}

func TestIteratorLeafEdges(t *testing.T) {
	it := NewIterator(0)

	// children of a leaf do not exist, the iterator stays put
	assert.Equal(t, uint64(0), it.LeftChild())
	assert.Equal(t, uint64(0), it.RightChild())

	// there is nothing to the left of offset 0 at any depth
	assert.Equal(t, uint64(0), it.Prev())
	it.Seek(3)
	assert.Equal(t, uint64(3), it.Prev())
}

func TestIteratorSides(t *testing.T) {
	type args struct {
		i uint64
	}
	tests := []struct {
		name     string
		args     args
		wantLeft bool
	}{
		{"0 is a left leaf", args{0}, true},
		{"2 is a right leaf", args{2}, false},
		{"4 is a left leaf", args{4}, true},
		{"1 is a left interior node", args{1}, true},
		{"5 is a right interior node", args{5}, false},
		{"3 is a left interior node", args{3}, true},
		{"11 is a right interior node", args{11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewIterator(tt.args.i)
			if got := it.IsLeft(); got != tt.wantLeft {
				t.Errorf("IsLeft() = %v, want %v", got, tt.wantLeft)
			}
			if got := it.IsRight(); got == tt.wantLeft {
				t.Errorf("IsRight() = %v, want %v", got, !tt.wantLeft)
			}
		})
	}
}

// TestIteratorAgreesWithAlgebra drives every move through the closed form
// functions and checks the incremental bookkeeping never drifts.
func TestIteratorAgreesWithAlgebra(t *testing.T) {
	for i := uint64(0); i < 1024; i++ {
		it := NewIterator(i)
		assert.Equal(t, Offset(i), it.Offset(), "offset after Seek(%d)", i)

		assert.Equal(t, Parent(i), it.Parent(), "parent of %d", i)

		it.Seek(i)
		assert.Equal(t, Sibling(i), it.Sibling(), "sibling of %d", i)

		it.Seek(i)
		assert.Equal(t, LeftSpan(i), it.LeftSpan(), "left span of %d", i)

		it.Seek(i)
		assert.Equal(t, RightSpan(i), it.RightSpan(), "right span of %d", i)

		it.Seek(i)
		assert.Equal(t, RightSpan(i)+2, it.NextTree(), "next tree after %d", i)

		if left, ok := LeftChild(i); ok {
			right, _ := RightChild(i)
			it.Seek(i)
			assert.Equal(t, left, it.LeftChild(), "left child of %d", i)
			it.Seek(i)
			assert.Equal(t, right, it.RightChild(), "right child of %d", i)
		}

		// Next and Prev step by one offset at the node's own depth
		d := Depth(i)
		it.Seek(i)
		assert.Equal(t, Index(d, Offset(i)+1), it.Next(), "next after %d", i)
		assert.Equal(t, i, it.Prev(), "prev undoes next from %d", i)
	}
}

func TestIteratorFullRoot(t *testing.T) {
	it := NewIterator(0)

	assert.True(t, it.FullRoot(22))
	assert.Equal(t, uint64(7), it.Index())
	assert.Equal(t, uint64(16), it.NextTree())

	assert.True(t, it.FullRoot(22))
	assert.Equal(t, uint64(17), it.Index())
	assert.Equal(t, uint64(20), it.NextTree())

	assert.True(t, it.FullRoot(22))
	assert.Equal(t, uint64(20), it.Index())
	assert.Equal(t, uint64(22), it.NextTree())

	assert.False(t, it.FullRoot(22))

	// an interior position is never a valid starting point
	it.Seek(7)
	assert.False(t, it.FullRoot(22))
}

// TestIteratorFullRootMatchesFullRoots replays the documented FullRoot loop
// for every leaf count up to 1<<9 and requires the exact FullRoots result.
func TestIteratorFullRootMatchesFullRoots(t *testing.T) {
	for n := uint64(0); n <= 1<<9; n++ {
		treeSize := 2 * n
		want := FullRoots(treeSize)

		got := make([]uint64, 0, len(want))
		it := NewIterator(0)
		for it.FullRoot(treeSize) {
			got = append(got, it.Index())
			it.NextTree()
		}

		assert.Equal(t, want, got, "roots for tree size %d", treeSize)
	}
}

/*
Package flattree maps the nodes of a conceptually infinite perfect binary
tree onto a single flat sequence of uint64 indices, so that append-only
merkle structures can be stored in one linear array with no pointers and no
materialised tree.

# Motivation

Streaming hash trees over append-only logs need a stable address for every
data block and every interior hash node. If those addresses can be computed
rather than stored, the storage layer reduces to a flat array and the tree
never has to exist as a data structure at all. The flat tree layout achieves
this with one rule: interleave the interior nodes between the leaves, in the
order a perfect binary tree would create them.

Even indices are leaves. Odd indices are interior nodes. The node at depth d
(counting up from the leaves at depth 0) and offset o (counting from the
left among nodes of that depth) lives at

	o * 2^(d+1) + 2^d - 1

So the first few levels of the address space look like this,

	3               7
	              /   \
	            /       \
	          /           \
	2        3             11
	       /   \          /   \
	1     1     5        9     13
	     / \   / \      / \    / \
	0   0   2 4   6    8  10 12   14

Independent of how large the tree grows, every relationship between nodes,
parent, sibling, uncle, children, the span of leaves below a node, is a
closed form expression over the index alone. The depth of a node is just the
number of trailing one bits of its index, which is the number of trailing
zero bits of index+1, so the whole algebra compiles down to shifts, masks
and a trailing zero count. Nothing here allocates and nothing retains state
between calls, so every function is trivially safe to call concurrently.

The layout and its algebra originate with the hypercore protocol's flat-tree
module. See:

  - https://github.com/mafintosh/flat-tree
  - https://datprotocol.github.io/deps/dep-0002/
  - https://github.com/datrs/flat-tree

# Burden of knowledge

In the interests of simplicity and efficiency the low level functions place
a burden of knowledge on the caller. The WithDepth variants trust the depth
they are given, and Sibling or Uncle of a node whose sibling has not been
written yet still return a perfectly valid address, the caller is expected
to know whether anything lives there. The two genuine contract edges are
made explicit: child access reports whether the node had children at all,
and Index panics if the coordinates do not fit in 64 bits, because a silently
wrapped address would corrupt whatever storage sits on top.

# Full roots

A log of n leaves rarely forms one perfect tree. It decomposes, exactly as n
decomposes into powers of two, into a left to right sequence of maximal
perfect subtrees, one per set bit of n. FullRoots returns the roots of that
decomposition, which is everything an accumulator or merkle mountain range
style construction needs to summarise the log. The Iterator provides the
same navigation incrementally for callers walking the address space a step
at a time.
*/
package flattree

// Package merkle implements an in-memory binary merkle hash tree with batch
// construction, single-leaf insertion and membership lookup by hash.
package merkle

import (
	"bytes"

	"merkletree/crypto"
)

// Node is one node of the tree. A node with no children is a leaf holding the
// digest of one data block; otherwise it always holds exactly two children
// and the digest of their digests.
type Node struct {
	hash  []byte
	left  *Node
	right *Node
}

// Hash returns the digest stored on the node
func (n *Node) Hash() []byte {
	return n.hash
}

// Left returns the left child, nil for a leaf
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, nil for a leaf
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf judges whether the node is a leaf
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func newLeaf(block []byte) *Node {
	return &Node{hash: crypto.Hash(block)}
}

// Tree owns at most one root node. The zero value is not usable, construct
// with New. A Tree is not safe for concurrent mutation; callers serialize
// access at their own boundary.
type Tree struct {
	root *Node
}

// New builds a tree from an ordered batch of data blocks. The batch is
// reduced by midpoint splitting, so the shape is balanced and a deterministic
// function of block order and count. An empty batch yields a tree without a
// root.
func New(blocks [][]byte) *Tree {
	leaves := make([]*Node, len(blocks))
	for i, block := range blocks {
		leaves[i] = newLeaf(block)
	}

	return &Tree{root: build(leaves)}
}

func build(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	// a lone node keeps its digest as-is at this level
	if len(nodes) == 1 {
		return nodes[0]
	}

	mid := len(nodes) / 2
	left := build(nodes[:mid])
	right := build(nodes[mid:])

	return &Node{
		hash:  crypto.HashNodes(left.hash, right.hash),
		left:  left,
		right: right,
	}
}

// RootHash returns the digest of the root, nil when the tree is empty
func (t *Tree) RootHash() []byte {
	if t.root == nil {
		return nil
	}

	return t.root.hash
}

// Insert adds one data block as a new leaf and recomputes every digest on
// the insertion path. Descent always prefers the left child when one exists,
// so repeated insertion grows a left-leaning chain rather than keeping the
// balanced batch shape.
func (t *Tree) Insert(block []byte) {
	t.root = insertNode(t.root, newLeaf(block))
}

func insertNode(node, leaf *Node) *Node {
	if node == nil {
		return leaf
	}

	// promote a leaf to an internal node over the old and new leaves
	if node.IsLeaf() {
		return &Node{
			hash:  crypto.HashNodes(node.hash, leaf.hash),
			left:  node,
			right: leaf,
		}
	}

	if node.left != nil {
		node.left = insertNode(node.left, leaf)
	} else {
		node.right = insertNode(node.right, leaf)
	}
	node.hash = crypto.HashNodes(node.left.hash, node.right.hash)

	return node
}

// Contains reports whether the block's leaf digest is stored anywhere in the
// tree. Every node is a candidate; the walk is a plain depth-first scan with
// no pruning, O(n) in the number of nodes.
func (t *Tree) Contains(block []byte) bool {
	return containsHash(t.root, crypto.Hash(block))
}

func containsHash(node *Node, target []byte) bool {
	if node == nil {
		return false
	}

	if bytes.Equal(node.hash, target) {
		return true
	}

	return containsHash(node.left, target) || containsHash(node.right, target)
}

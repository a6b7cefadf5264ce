package merkle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"merkletree/crypto"
)

func TestNewEmpty(t *testing.T) {
	r := require.New(t)

	tree := New(nil)
	r.NotNil(tree)
	r.Nil(tree.RootHash())
	r.False(tree.Contains([]byte("anything")))
	r.False(tree.Contains(nil))

	tree = New([][]byte{})
	r.Nil(tree.RootHash())
}

func TestNewSingleLeaf(t *testing.T) {
	r := require.New(t)

	block := []byte("single")
	tree := New([][]byte{block})

	r.Equal(crypto.Hash(block), tree.RootHash())
	r.True(tree.Contains(block))
	r.False(tree.Contains([]byte("other")))
}

func TestNewDeterministic(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	blocks := randomBlocks(65)
	first := New(blocks).RootHash()

	for i := 0; i < 8; i++ {
		r.Equal(first, New(blocks).RootHash())
	}
}

func TestNewOrderSensitive(t *testing.T) {
	r := require.New(t)

	ab := New([][]byte{[]byte("a"), []byte("b")})
	ba := New([][]byte{[]byte("b"), []byte("a")})
	r.NotEqual(ab.RootHash(), ba.RootHash())
}

func TestNewChangeSensitive(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	blocks := randomBlocks(33)
	before := New(blocks).RootHash()

	i := rand.Intn(len(blocks))
	blocks[i] = append(append([]byte{}, blocks[i]...), 'x')
	r.NotEqual(before, New(blocks).RootHash())
}

// The batch constructor splits at len/2, so four leaves form two pairs under
// the root and three leaves put the odd leaf alone on the left.
func TestNewShape(t *testing.T) {
	r := require.New(t)

	tree := New([][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")})
	root := tree.root
	r.False(root.IsLeaf())
	r.False(root.Left().IsLeaf())
	r.False(root.Right().IsLeaf())
	r.True(root.Left().Left().IsLeaf())
	r.True(root.Left().Right().IsLeaf())
	r.True(root.Right().Left().IsLeaf())
	r.True(root.Right().Right().IsLeaf())
	r.Equal(crypto.Hash([]byte("a")), root.Left().Left().Hash())
	r.Equal(crypto.Hash([]byte("d")), root.Right().Right().Hash())

	tree = New([][]byte{[]byte("a"), []byte("b"), []byte("c")})
	root = tree.root
	r.True(root.Left().IsLeaf())
	r.False(root.Right().IsLeaf())
	r.Equal(crypto.Hash([]byte("a")), root.Left().Hash())
}

func TestNewAgainstReference(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	for n := 0; n <= 64; n++ {
		blocks := randomBlocks(n)
		tree := New(blocks)

		digests := make([][]byte, n)
		for i := range blocks {
			digests[i] = crypto.Hash(blocks[i])
		}
		r.Equal(testRootHash(digests), tree.RootHash())

		for _, block := range blocks {
			r.True(tree.Contains(block))
		}
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	r := require.New(t)

	tree := New(nil)
	block := []byte("first")
	tree.Insert(block)

	// the first leaf becomes the root without any node hashing
	r.Equal(crypto.Hash(block), tree.RootHash())
	r.True(tree.root.IsLeaf())
	r.True(tree.Contains(block))
}

func TestInsertMembership(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	seed := randomBlocks(9)
	tree := New(seed)

	inserted := make([][]byte, 0, 33)
	for i := 0; i < 33; i++ {
		block := randomBlocks(1)[0]
		before := tree.RootHash()

		tree.Insert(block)
		inserted = append(inserted, block)

		r.NotEqual(before, tree.RootHash())
		r.True(tree.Contains(block))

		// earlier members stay members
		for _, old := range seed {
			r.True(tree.Contains(old))
		}
		for _, old := range inserted {
			r.True(tree.Contains(old))
		}
	}
}

// Insertion descends the left branch whenever one exists, so the second and
// every later leaf pairs up with the leftmost path and the tree degrades to
// a left chain. The shape is deliberate and pinned here.
func TestInsertShape(t *testing.T) {
	r := require.New(t)

	tree := New(nil)
	tree.Insert([]byte("a"))
	tree.Insert([]byte("b"))

	root := tree.root
	r.False(root.IsLeaf())
	r.Equal(crypto.Hash([]byte("a")), root.Left().Hash())
	r.Equal(crypto.Hash([]byte("b")), root.Right().Hash())

	tree.Insert([]byte("c"))
	root = tree.root
	r.Equal(crypto.Hash([]byte("b")), root.Right().Hash())
	r.Equal(crypto.Hash([]byte("a")), root.Left().Left().Hash())
	r.Equal(crypto.Hash([]byte("c")), root.Left().Right().Hash())

	tree.Insert([]byte("d"))
	root = tree.root
	r.Equal(crypto.Hash([]byte("b")), root.Right().Hash())
	r.Equal(crypto.Hash([]byte("c")), root.Left().Right().Hash())
	r.Equal(crypto.Hash([]byte("a")), root.Left().Left().Left().Hash())
	r.Equal(crypto.Hash([]byte("d")), root.Left().Left().Right().Hash())

	r.Equal(crypto.HashNodes(root.Left().Hash(), root.Right().Hash()), root.Hash())
}

func TestContainsNegative(t *testing.T) {
	r := require.New(t)

	tree := New([][]byte{[]byte("a"), []byte("b"), []byte("c")})
	r.False(tree.Contains([]byte("d")))

	// an internal digest is not a member, only leaf digests are
	r.False(tree.Contains(tree.RootHash()))
}

func TestScenario(t *testing.T) {
	r := require.New(t)

	tree := New([][]byte{[]byte("hello"), []byte("world"), []byte("whatsup"), []byte("merkle")})
	r.Equal("acddce4b533e0c05c94a18d34e31a930e313457ed4810e6b5c588bf409d8df6f", string(tree.RootHash()))

	tree.Insert([]byte("tree"))
	r.Equal("f9ea6d060918fd6149491291467e2f99553f9b920540f1d7c1ba10e440587ae2", string(tree.RootHash()))

	r.True(tree.Contains([]byte("hello")))
	r.True(tree.Contains([]byte("tree")))
	r.False(tree.Contains([]byte("not-inserted")))
}

func randomBlocks(n int) [][]byte {
	blocks := make([][]byte, n)
	for i := range blocks {
		blocks[i] = make([]byte, 16+rand.Intn(48))
		rand.Read(blocks[i])
	}
	return blocks
}

// testRootHash reduces leaf digests the same way New does, only used for
// verifying the correctness
func testRootHash(digests [][]byte) []byte {
	if len(digests) == 0 {
		return nil
	}
	if len(digests) == 1 {
		return digests[0]
	}

	mid := len(digests) / 2
	return crypto.HashNodes(testRootHash(digests[:mid]), testRootHash(digests[mid:]))
}

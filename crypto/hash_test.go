package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	r := require.New(t)

	inputs := []string{"", "hello", "world", "whatsup", "merkle", "tree", "encoding/hex"}
	expects := []string{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		"486ea46224d1bb4fb680f34f7c9ad96a8f24ec88be73ea8e5a6c65260e9cb8a7",
		"ab55a60854e1b699c68a692f0a4980dbc5771ac32e641c89b636c00bb05c7cf5",
		"7975edd9e7393c229e744913fe0d0bb86fb4cf46906e2e51152137e20ad15590",
		"dc9c5edb8b2d479e697b4b0b8ab874f32b325138598ce9e7b759eb8292110622",
		"5638d79f9ac9e896cf275a1d7b1a4b59324984775bb9316a801583f44d798a59"}

	for i, input := range inputs {
		hash := Hash([]byte(input))
		r.Equal(expects[i], string(hash))
	}
}

func TestHashNodes(t *testing.T) {
	r := require.New(t)

	inputs := []struct {
		Left  string
		Right string
	}{{"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", "486ea46224d1bb4fb680f34f7c9ad96a8f24ec88be73ea8e5a6c65260e9cb8a7"},
		{"486ea46224d1bb4fb680f34f7c9ad96a8f24ec88be73ea8e5a6c65260e9cb8a7", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb", "3e23e8160039594a33894f6564e1b1348bbd7a0088d42c4acb73eeaed59c009d"}}
	expects := []string{"15e178b71fae8849ee562c9cc0d7ea322fba6cd495411329d47234479167cc8b",
		"e3c44e0a4703e175d65af713d1d5c606205e6a929473ceb375efde374a037d71",
		"62af5c3cb8da3e4f25061e829ebeea5c7513c54949115b1acc225930a90154da"}

	for i, input := range inputs {
		hash := HashNodes([]byte(input.Left), []byte(input.Right))
		r.Equal(expects[i], string(hash))
	}
}

// Feeding the two children separately must equal hashing their concatenation,
// and swapping them must not.
func TestHashNodesOrder(t *testing.T) {
	r := require.New(t)

	left := Hash([]byte("left"))
	right := Hash([]byte("right"))

	r.Equal(string(Hash(append(append([]byte{}, left...), right...))), string(HashNodes(left, right)))
	r.NotEqual(string(HashNodes(left, right)), string(HashNodes(right, left)))
}

package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestSumMatchesBlake3(t *testing.T) {
	expected := blake3.Sum256([]byte("helloworld"))
	require.Equal(t, expected, Sum([]byte("hello"), []byte("world")))
}

func TestPooledHasherIsReset(t *testing.T) {
	first := Sum([]byte("a"))
	second := Sum([]byte("a"))
	require.Equal(t, first, second)
}

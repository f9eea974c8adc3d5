package hash

import "github.com/zeebo/blake3"

// Size of a blake3 digest used across the module.
const Size = 32

// Sum returns the blake3 sum of the concatenated chunks.
func Sum(chunks ...[]byte) (rst [Size]byte) {
	hh := GetHasher()
	defer PutHasher(hh)
	for _, chunk := range chunks {
		hh.Write(chunk)
	}
	hh.Sum(rst[:0])
	return rst
}

// New returns a fresh blake3 hasher.
func New() *blake3.Hasher {
	return blake3.New()
}

package capability

import (
	"github.com/pierrec/xxHash/xxHash64"
	"github.com/zeebo/xxh3"
)

// Hasher hashes raw key bytes to a 64-bit hash value.
type Hasher interface {
	Sum(b []byte) uint64
	SumString(s string) uint64
}

// DefaultHasher is XXH3 with seed 0.
var DefaultHasher Hasher = HasherXXH3{}

// HasherXXH3 can be used to provide custom seeds.
type HasherXXH3 struct {
	Seed uint64
}

// Sum hashes b using XXH3.
func (h HasherXXH3) Sum(b []byte) uint64 {
	return xxh3.HashSeed(b, h.Seed)
}

// SumString hashes s using XXH3.
func (h HasherXXH3) SumString(s string) uint64 {
	return xxh3.HashStringSeed(s, h.Seed)
}

// HasherXXH64 uses XXH64 from github.com/pierrec/xxHash.
type HasherXXH64 struct {
	Seed uint64
}

// Sum hashes b using XXH64.
func (h HasherXXH64) Sum(b []byte) uint64 {
	return xxHash64.Checksum(b, h.Seed)
}

// SumString hashes s using XXH64.
func (h HasherXXH64) SumString(s string) uint64 {
	return xxHash64.Checksum([]byte(s), h.Seed)
}

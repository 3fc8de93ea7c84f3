// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package str

import (
	"encoding/binary"
	"os"
	"sync"
	"time"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// Hasher computes keyed hashes of string content.
//
// Hash values depend on the keys, so values produced by
// the default hasher change from one process run to the
// next. They must not be persisted or used for anything
// security sensitive; see Digest for a stable alternative.
type Hasher struct {
	k0, k1 uint64
}

// NewHasher returns a Hasher whose keys are derived from seed.
func NewHasher(seed uint64) Hasher {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	sum := blake2b.Sum256(buf[:])
	return Hasher{
		k0: binary.LittleEndian.Uint64(sum[0:]),
		k1: binary.LittleEndian.Uint64(sum[8:]),
	}
}

// Hash returns the hash of the content of s.
func (h Hasher) Hash(s Str) uint64 {
	return siphash.Hash(h.k0, h.k1, s.Bytes())
}

var (
	defaultOnce   sync.Once
	defaultHasher Hasher
)

// DefaultHasher returns the process-wide Hasher,
// seeded on first use from the current time and
// the process id.
func DefaultHasher() Hasher {
	defaultOnce.Do(func() {
		seed := uint64(time.Now().UnixNano()) ^ uint64(os.Getpid())
		defaultHasher = NewHasher(seed)
	})
	return defaultHasher
}

// Hash returns the hash of s computed by DefaultHasher.
func Hash(s Str) uint64 {
	return DefaultHasher().Hash(s)
}

// Digest returns an unkeyed BLAKE2b-256 digest of the
// content of s. Unlike Hash, it is stable across runs.
func Digest(s Str) [32]byte {
	return blake2b.Sum256(s.Bytes())
}

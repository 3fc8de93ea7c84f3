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

// Package mem manages the heap buffers owned by
// string values.
//
// Every buffer handed out by Alloc (or adopted via Adopt)
// must be returned exactly once through Free. The package
// keeps a count of live buffers so that callers and tests
// can verify the one-owner protocol; building with
// -tags=strmemdebug additionally records the allocation
// site of every live buffer and panics on double frees.
package mem

import (
	"log"
	"math"
	"os"
	"sync/atomic"
)

// MaxAlloc is the largest buffer Alloc will try to
// provide. String lengths share a machine word
// with the ownership bit, so one bit is lost.
const MaxAlloc = math.MaxInt >> 1

var (
	// number of buffers handed out by Alloc/Adopt
	// that have not been returned through Free
	live int64
	// number of bytes in those buffers
	liveBytes int64
)

// failure is invoked when a request cannot be
// satisfied. It must not return.
var failure = func(n int) {
	log.Printf("fatal error: cannot allocate %d bytes", n)
	os.Exit(2)
}

// Alloc returns a new buffer of exactly n bytes.
//
// Allocation failure is fatal: the process is
// terminated rather than returning a partial buffer.
func Alloc(n int) []byte {
	if n < 0 || n > MaxAlloc {
		failure(n)
	}
	if n == 0 {
		panic("mem.Alloc: zero size")
	}
	buf := make([]byte, n)
	track(buf)
	return buf
}

// Adopt registers buf, which was allocated
// elsewhere, as a buffer that will later be
// returned through Free.
func Adopt(buf []byte) {
	if len(buf) == 0 {
		panic("mem.Adopt: empty buffer")
	}
	track(buf)
}

// Free returns a buffer obtained from Alloc or Adopt.
// The caller may not use the contents of buf after
// it has called Free.
func Free(buf []byte) {
	if len(buf) == 0 {
		panic("mem.Free: empty buffer")
	}
	untrack(buf)
}

// Live returns the number of buffers obtained from
// Alloc or Adopt that have not yet been passed to Free.
func Live() int {
	return int(atomic.LoadInt64(&live))
}

// LiveBytes returns the total size of the buffers
// counted by Live.
func LiveBytes() int64 {
	return atomic.LoadInt64(&liveBytes)
}

func track(buf []byte) {
	atomic.AddInt64(&live, 1)
	atomic.AddInt64(&liveBytes, int64(len(buf)))
	leakstart(buf)
}

func untrack(buf []byte) {
	leakend(buf)
	atomic.AddInt64(&liveBytes, -int64(len(buf)))
	if atomic.AddInt64(&live, -1) < 0 {
		panic("mem.Free: more buffers freed than allocated")
	}
}

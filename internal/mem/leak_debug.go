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

//go:build strmemdebug

package mem

import (
	"fmt"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
)

var (
	leaksActive atomic.Bool
	leaksLock   sync.Mutex
	liveSet     = map[*byte]string{}
)

func leakstart(buf []byte) {
	stack := ""
	if leaksActive.Load() {
		stack = string(debug.Stack())
	}
	leaksLock.Lock()
	defer leaksLock.Unlock()
	if _, ok := liveSet[&buf[0]]; ok {
		panic("mem: buffer registered twice")
	}
	liveSet[&buf[0]] = stack
}

func leakend(buf []byte) {
	leaksLock.Lock()
	defer leaksLock.Unlock()
	if _, ok := liveSet[&buf[0]]; !ok {
		panic("double mem.Free()")
	}
	delete(liveSet, &buf[0])
	// make use-after-free visible
	for i := range buf {
		buf[i] = 0xa5
	}
}

// LeakCheck runs fn and writes the stack traces
// of all the buffers that were allocated within fn
// and were not freed.
func LeakCheck(w io.Writer, fn func()) {
	if leaksActive.Swap(true) {
		panic("concurrent mem.LeakCheck calls")
	}
	leaksLock.Lock()
	before := maps.Clone(liveSet)
	leaksLock.Unlock()

	fn()

	leaksLock.Lock()
	defer leaksLock.Unlock()
	i := 1
	for p, stack := range liveSet {
		if _, ok := before[p]; ok {
			continue
		}
		fmt.Fprintf(w, "\n#%d. buffer %p allocated at\n%s\n", i, p, stack)
		i++
	}
	leaksActive.Store(false)
}

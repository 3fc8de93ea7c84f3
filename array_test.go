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
	"testing"
)

func lits(src ...string) []Str {
	out := make([]Str, len(src))
	for i := range src {
		out[i] = Lit(src[i])
	}
	return out
}

func checkOrder(t *testing.T, got []Str, want ...string) {
	t.Helper()
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("element %d: got %q, want %q", i, got[i].String(), want[i])
		}
	}
}

func TestSortArray(t *testing.T) {
	a := lits("z", "zzz", "aaa", "bbb")
	SortArray(OrderAsc, a)
	checkOrder(t, a, "aaa", "bbb", "z", "zzz")
	SortArray(OrderDesc, a)
	checkOrder(t, a, "zzz", "z", "bbb", "aaa")

	// nothing to do
	SortArray(OrderAsc, nil)
	SortArray(nil, a)
	checkOrder(t, a, "zzz", "z", "bbb", "aaa")
}

func TestSortArrayCI(t *testing.T) {
	a := lits("ZZZ", "zzz", "aaa", "AAA")
	SortArray(OrderAscCI, a)
	for i, want := range []string{"aaa", "aaa", "zzz", "zzz"} {
		if !EqCI(a[i], Lit(want)) {
			t.Fatalf("element %d: got %q", i, a[i].String())
		}
	}
	SortArray(OrderDescCI, a)
	for i, want := range []string{"zzz", "zzz", "aaa", "aaa"} {
		if !EqCI(a[i], Lit(want)) {
			t.Fatalf("element %d: got %q", i, a[i].String())
		}
	}
}

func TestSearchArray(t *testing.T) {
	a := lits("z", "zzz", "aaa", "bbb")
	SortArray(OrderAsc, a)
	for i := range a {
		if got := SearchArray(a[i], a); got != i {
			t.Errorf("SearchArray(%q) = %d, want %d", a[i].String(), got, i)
		}
	}
	for _, key := range []string{"xxx", "", "zzzz", "a"} {
		if got := SearchArray(Lit(key), a); got != -1 {
			t.Errorf("SearchArray(%q) = %d, want -1", key, got)
		}
	}
	if SearchArray(Lit("x"), nil) != -1 {
		t.Error("found a key in an empty array")
	}
}

func TestPartitionArray(t *testing.T) {
	short := func(s Str) bool { return s.Len() < 2 }
	a := lits("aaa", "a", "aaaa", "z")
	if n := PartitionArray(short, a[:1]); n != 0 {
		t.Fatalf("got %d", n)
	}
	if n := PartitionArray(short, a); n != 2 {
		t.Fatalf("got %d", n)
	}
	checkOrder(t, a, "a", "z")
	if n := PartitionArray(short, a[:1]); n != 1 {
		t.Fatalf("got %d", n)
	}

	a[0], a[2] = Lit("?"), Lit("*")
	if n := PartitionArray(short, a); n != 3 {
		t.Fatalf("got %d", n)
	}
	checkOrder(t, a, "?", "z", "*", "aaa")

	if PartitionArray(short, nil) != 0 || PartitionArray(short, a[:0]) != 0 {
		t.Fatal("empty array")
	}
}

func TestPartitionArrayOwned(t *testing.T) {
	noLeaks(t, func() {
		a := make([]Str, 10)
		for i := range a {
			Clone(&a[i], Lit("x"))
			Repeat(&a[i], i+1)
		}
		n := PartitionArray(func(s Str) bool { return s.Len()%2 == 0 }, a)
		if n != 5 {
			t.Fatalf("got %d", n)
		}
		for i := range a {
			if (a[i].Len()%2 == 0) != (i < n) {
				t.Fatalf("element %d out of place", i)
			}
			// every owned value survives exactly once
			a[i].Clear()
		}
	})
}

func TestUniqueArray(t *testing.T) {
	a := lits("aaa", "aaa", "aaa", "bbb", "ccc", "ccc", "ccc", "ddd")
	if n := UniqueArray(a); n != 4 {
		t.Fatalf("got %d", n)
	}
	checkOrder(t, a, "aaa", "bbb", "ccc", "ddd")

	a = lits("b", "a", "b", "c", "a")
	if n := UniqueArray(a); n != 3 {
		t.Fatalf("got %d", n)
	}
	checkOrder(t, a, "a", "b", "c")

	if UniqueArray(nil) != 0 || UniqueArray(lits("x")) != 1 {
		t.Fatal("short arrays")
	}
}

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
	"golang.org/x/exp/slices"
)

// Order functions for SortArray.
var (
	OrderAsc    = Cmp
	OrderDesc   = func(a, b Str) int { return Cmp(b, a) }
	OrderAscCI  = CmpCI
	OrderDescCI = func(a, b Str) int { return CmpCI(b, a) }
)

// SortArray sorts a according to order.
func SortArray(order func(a, b Str) int, a []Str) {
	if order != nil && len(a) > 1 {
		slices.SortFunc(a, order)
	}
}

// SearchArray returns the index of key in a, which must
// be sorted by OrderAsc, or -1 if key is not present.
func SearchArray(key Str, a []Str) int {
	i, ok := slices.BinarySearchFunc(a, key, Cmp)
	if !ok {
		return -1
	}
	return i
}

// PartitionArray reorders a so that every element
// satisfying pred precedes every element that does not,
// and returns the number of elements satisfying pred.
// Elements are swapped, never overwritten, so no
// owned value is lost.
func PartitionArray(pred func(Str) bool, a []Str) int {
	n := 0
	for n < len(a) && pred(a[n]) {
		n++
	}
	for i := n + 1; i < len(a); i++ {
		if pred(a[i]) {
			Swap(&a[n], &a[i])
			n++
		}
	}
	return n
}

// UniqueArray sorts a by OrderAsc and moves the first
// occurrence of every distinct value to the front,
// returning the number of distinct values. Duplicates
// are kept, in unspecified order, at the tail of a.
func UniqueArray(a []Str) int {
	if len(a) < 2 {
		return len(a)
	}
	SortArray(OrderAsc, a)
	n := 1
	for i := 1; i < len(a); i++ {
		if !Eq(a[i], a[n-1]) {
			Swap(&a[n], &a[i])
			n++
		}
	}
	return n
}

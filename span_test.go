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
	"bytes"
	"fmt"
	"testing"
)

func TestSpanChars(t *testing.T) {
	testcases := []struct {
		src, set string
		want     int
	}{
		{"", "", 0},
		{"xxx", "", 0},
		{"", "xyz", 0},
		{"_", "_", 1},
		{"_x", "_", 1},
		{"__x", "_", 2},
		{"___x", "_", 3},
		{"___", "_", 3},
		{"__", "_/-", 2},
		{"\x00*", "_/-\x00", 1},
		{"\xFF*", "_/-\xFF", 1},
		{"ZZ", "_/-Z", 2},
		{"///", "_/-", 3},
		{"//-_x", "_/-", 4},
	}
	for i := range testcases {
		tc := &testcases[i]
		if got := SpanChars(Lit(tc.src), Lit(tc.set)); got != tc.want {
			t.Errorf("case %d: SpanChars(%q, %q) = %d, want %d", i, tc.src, tc.set, got, tc.want)
		}
	}
}

func TestSpanNonMatchingChars(t *testing.T) {
	testcases := []struct {
		src, set string
		want     int
	}{
		{"", "", 0},
		{"xxx", "", 3},
		{"", "xyz", 0},
		{"_", "_", 0},
		{"x_", "_", 1},
		{"xx_", "_", 2},
		{"xxx_", "_", 3},
		{"xxx", "_", 3},
		{"*_", "_/-", 1},
		{"x\x00", "_/-\x00", 1},
		{"x\xFF", "_/-\xFF", 1},
		{"YZa", "_/-Z", 1},
		{"xxx/", "_/-", 3},
		{"xxx\x00-x", "_/-", 4},
	}
	for i := range testcases {
		tc := &testcases[i]
		if got := SpanNonMatchingChars(Lit(tc.src), Lit(tc.set)); got != tc.want {
			t.Errorf("case %d: SpanNonMatchingChars(%q, %q) = %d, want %d", i, tc.src, tc.set, got, tc.want)
		}
	}
}

func TestSpanUntilSubstring(t *testing.T) {
	testcases := []struct {
		src, sub string
		want     int
	}{
		{"", "xxx", 0},
		{"xxx", "", 0},
		{"", "", 0},
		{"xxx-yyy-zzz", "xxx", 0},
		{"xxx-yyy-zzz", "yyy", 4},
		{"xxx-yyy-zzz", "zzz", 8},
		{"xxx-yyy-zzz", "???", 11},
	}
	for i := range testcases {
		tc := &testcases[i]
		if got := SpanUntilSubstring(Lit(tc.src), Lit(tc.sub)); got != tc.want {
			t.Errorf("case %d: SpanUntilSubstring(%q, %q) = %d, want %d", i, tc.src, tc.sub, got, tc.want)
		}
	}
}

func TestReplaceSubstringCorners(t *testing.T) {
	var s Str
	if ReplaceSubstring(&s, Str{}, Str{}) != 0 || !s.IsEmpty() {
		t.Fatal("null input")
	}
	s = Lit("xxx")
	if ReplaceSubstring(&s, Str{}, Str{}) != 0 || !Eq(s, Lit("xxx")) || !s.IsRef() {
		t.Fatal("empty pattern must not modify the value")
	}
	s = Str{}
	if ReplaceSubstring(&s, Lit("xxx"), Str{}) != 0 || !s.IsEmpty() {
		t.Fatal("null input with pattern")
	}
	if ReplaceSubstring(&s, Str{}, Lit("xxx")) != 0 || !s.IsEmpty() {
		t.Fatal("null input with replacement")
	}
}

func TestReplaceSubstring(t *testing.T) {
	testcases := []struct {
		src, sub, repl string
		n              int
		want           string
	}{
		{"xxx_", "xxx", "zzz", 1, "zzz_"},
		{"_xxx", "xxx", "zzz", 1, "_zzz"},
		{"_xxx_", "xxx", "zzz", 1, "_zzz_"},
		{"x_x_x_x_x_x_x_x_x", "_", "", 8, "xxxxxxxxx"},
		{"aaaa", "aa", "b", 2, "bb"},
		{"aaa", "aa", "b", 1, "ba"},
		{"abc", "x", "y", 0, "abc"},
	}
	for i := range testcases {
		tc := &testcases[i]
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			noLeaks(t, func() {
				s := Lit(tc.src)
				n := ReplaceSubstring(&s, Lit(tc.sub), Lit(tc.repl))
				if n != tc.n || s.String() != tc.want {
					t.Fatalf("got %d, %q; want %d, %q", n, s.String(), tc.n, tc.want)
				}
				if n == 0 && !s.IsRef() {
					t.Fatal("value modified without a match")
				}
				s.Clear()
			})
		})
	}
}

func TestReplaceSubstringLarge(t *testing.T) {
	const N = 10000
	noLeaks(t, func() {
		s := Lit("x_")
		Repeat(&s, N)
		if n := ReplaceSubstring(&s, Lit("_"), Lit("X")); n != N {
			t.Fatalf("%d replacements", n)
		}
		if SpanChars(s, Lit("xX")) != 2*N {
			t.Fatal("bad content")
		}
		s2 := Lit("xX")
		Repeat(&s2, N)
		if !Eq(s, s2) {
			t.Fatal("mismatch")
		}
		if n := ReplaceSubstring(&s2, Lit("xX"), Str{}); n != N {
			t.Fatalf("%d replacements", n)
		}
		if !s2.IsEmpty() || !s2.IsRef() {
			t.Fatal("expected the null value")
		}
		if n := ReplaceSubstring(&s, Lit("X"), Lit("xxx")); n != N {
			t.Fatalf("%d replacements", n)
		}
		if s.Len() != 4*N || SpanChars(s, Lit("x")) != 4*N {
			t.Fatal("bad content")
		}
		checkSentinel(t, s)
		s.Clear()
	})
}

func TestReplaceChars(t *testing.T) {
	noLeaks(t, func() {
		var s Str
		if ReplaceChars(&s, Str{}, Str{}) != 0 || !s.IsEmpty() {
			t.Fatal("null input")
		}
		s = Lit("xyz")
		if ReplaceChars(&s, Str{}, Lit("xyz")) != 0 || !Eq(s, Lit("xyz")) || !s.IsRef() {
			t.Fatal("empty set must not modify the value")
		}
		if ReplaceChars(&s, Lit("xyz"), Str{}) != 3 || !s.IsEmpty() {
			t.Fatal("deleting every byte")
		}

		testcases := []struct {
			set, want string
		}{
			{"y", "x_z"},
			{"x", "_yz"},
			{"z", "xy_"},
		}
		for _, tc := range testcases {
			s.Assign(Lit("xyz"))
			if n := ReplaceChars(&s, Lit(tc.set), Lit("_")); n != 1 {
				t.Fatalf("%d replacements", n)
			}
			if !Eq(s, Lit(tc.want)) || !s.IsOwner() {
				t.Fatalf("got %q, want %q", s.String(), tc.want)
			}
			checkSentinel(t, s)
		}
		s.Clear()
	})
}

func TestReplaceCharsLarge(t *testing.T) {
	const N = 10000
	testcases := []struct {
		src, set, repl string
		n              int
		want           string
	}{
		{"xX", "XYZ", "", N, "x"},
		{"xX", "xyz", "", N, "X"},
		{"xX", "xX", "z", 2 * N, "zz"},
		{"xx", "?", "z", 0, "xx"},
	}
	for i := range testcases {
		tc := &testcases[i]
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			noLeaks(t, func() {
				s := Lit(tc.src)
				Repeat(&s, N)
				if n := ReplaceChars(&s, Lit(tc.set), Lit(tc.repl)); n != tc.n {
					t.Fatalf("%d replacements, want %d", n, tc.n)
				}
				if !bytes.Equal(s.Bytes(), bytes.Repeat([]byte(tc.want), N)) {
					t.Fatal("bad content")
				}
				s.Clear()
			})
		})
	}
}

func TestReplaceCharSpans(t *testing.T) {
	noLeaks(t, func() {
		var s Str
		for _, set := range []string{"", "xyz"} {
			if ReplaceCharSpans(&s, Lit(set), Str{}) != 0 || !s.IsEmpty() || !s.IsRef() {
				t.Fatal("null input")
			}
		}
		s = Lit("xyz")
		if ReplaceCharSpans(&s, Str{}, Lit("xyz")) != 0 || !Eq(s, Lit("xyz")) || !s.IsRef() {
			t.Fatal("empty set must not modify the value")
		}

		s.Assign(Lit("x__y  _z"))
		if n := ReplaceCharSpans(&s, Lit("_ "), Lit("|")); n != 2 || !Eq(s, Lit("x|y|z")) {
			t.Fatalf("got %d, %q", n, s.String())
		}
		s.Assign(Lit(" x__y  _z  "))
		if n := ReplaceCharSpans(&s, Lit("_ "), Lit("|")); n != 4 || !Eq(s, Lit("|x|y|z|")) {
			t.Fatalf("got %d, %q", n, s.String())
		}
		checkSentinel(t, s)
		s.Clear()
	})
}

func TestReplaceCharSpansLarge(t *testing.T) {
	const N = 10000
	noLeaks(t, func() {
		s := Lit(" x\t\n")
		Repeat(&s, N)
		if n := ReplaceCharSpans(&s, Lit(" \t\r\n"), Str{}); n != N+1 {
			t.Fatalf("%d replacements", n)
		}
		if s.Len() != N || SpanChars(s, Lit("x")) != N {
			t.Fatal("bad content")
		}

		s.Assign(Lit(" x\t\n"))
		Repeat(&s, N)
		if n := ReplaceCharSpans(&s, Lit(" \t\r\n"), Lit("x")); n != N+1 {
			t.Fatalf("%d replacements", n)
		}
		if s.Len() != 2*N+1 || SpanChars(s, Lit("x")) != 2*N+1 {
			t.Fatal("bad content")
		}
		s.Clear()
	})
}

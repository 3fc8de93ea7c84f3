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

package main

import (
	"fmt"
	"sort"
	"unicode"
)

// classes maps class names to membership tests
// approximating the C library's isw* functions
// under a UTF-8 locale.
var classes = map[string]func(rune) bool{
	"alnum": func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
	"alpha": unicode.IsLetter,
	"blank": func(r rune) bool { return r == '\t' || unicode.Is(unicode.Zs, r) },
	"cntrl": unicode.IsControl,
	"digit": func(r rune) bool { return r >= '0' && r <= '9' },
	"graph": func(r rune) bool { return unicode.IsGraphic(r) && !unicode.IsSpace(r) },
	"lower": unicode.IsLower,
	"print": unicode.IsGraphic,
	"punct": func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) },
	"space": unicode.IsSpace,
	"upper": unicode.IsUpper,
	"xdigit": func(r rune) bool {
		return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
	},
}

// classNames returns the known class names in order.
func classNames() []string {
	out := make([]string, 0, len(classes))
	for name := range classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// span is an inclusive range of codepoints.
type span struct {
	lo, hi rune
}

// ranges returns the sorted, non-adjacent
// spans of codepoints for which fn is true.
func ranges(fn func(rune) bool) []span {
	var out []span
	in := false
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r >= 0xd800 && r <= 0xdfff {
			// surrogates are never members
			in = false
			continue
		}
		match := fn(r)
		switch {
		case match && !in:
			out = append(out, span{r, r})
			in = true
		case match:
			out[len(out)-1].hi = r
		default:
			in = false
		}
	}
	return out
}

// funcName returns the default name of the
// generated function for class.
func funcName(class string) string {
	return fmt.Sprintf("Is%c%s", unicode.ToUpper(rune(class[0])), class[1:])
}

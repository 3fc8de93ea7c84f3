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

	"github.com/maxim2266/str/internal/charset"
)

// Tokenizer splits a string into tokens separated
// by runs of delimiter bytes. Tokens are views of the
// source, which must outlive them.
type Tokenizer struct {
	src    []byte
	delims charset.Set
}

// NewTokenizer returns a Tokenizer over src
// using the bytes of delims as separators.
func NewTokenizer(src, delims Str) Tokenizer {
	return Tokenizer{
		src:    src.Bytes(),
		delims: charset.New(delims.Bytes()),
	}
}

// Next stores the next non-empty token in *tok and
// returns true, or sets *tok to the null value and
// returns false when the input is exhausted.
// The previous value of *tok is overwritten, not released.
func (t *Tokenizer) Next(tok *Str) bool {
	p := t.src[t.delims.Span(t.src):]
	if len(p) == 0 {
		t.src = nil
		*tok = Str{}
		return false
	}
	n := t.delims.Search(p)
	*tok = RefBytes(p[:n])
	t.src = p[n:]
	return true
}

// Partition splits src around the first occurrence of patt:
// *prefix receives the part before it and *suffix the part
// after it, both as views of src. When patt does not occur
// (or either argument is empty), *prefix is a view of src,
// *suffix is null and the result is false.
// Previous values of *prefix and *suffix are overwritten,
// not released.
func Partition(src, patt Str, prefix, suffix *Str) bool {
	if !src.IsEmpty() && !patt.IsEmpty() {
		if i := bytes.Index(src.Bytes(), patt.Bytes()); i >= 0 {
			*prefix = RefSlice(src, 0, i)
			*suffix = RefSlice(src, i+patt.Len(), src.Len())
			return true
		}
	}
	*prefix = Ref(src)
	*suffix = Str{}
	return false
}

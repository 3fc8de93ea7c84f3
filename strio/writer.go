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

package strio

import (
	"io"
	"net"

	"github.com/maxim2266/str"
)

func writerBatch(w io.Writer) *batch {
	return &batch{
		iov: make([][]byte, 0, maxIovecs),
		flush: func(iov [][]byte) error {
			// net.Buffers uses writev(2) when w supports it
			bufs := net.Buffers(iov)
			_, err := bufs.WriteTo(w)
			return err
		},
	}
}

// ConcatArrayToWriter writes the concatenation of src to w.
func ConcatArrayToWriter(w io.Writer, src []str.Str) error {
	return concat(writerBatch(w), src)
}

// ConcatToWriter is the variadic form of ConcatArrayToWriter.
func ConcatToWriter(w io.Writer, src ...str.Str) error {
	return ConcatArrayToWriter(w, src)
}

// JoinArrayToWriter writes the elements of src
// separated by sep to w.
func JoinArrayToWriter(w io.Writer, sep str.Str, src []str.Str) error {
	return join(writerBatch(w), sep, src)
}

// JoinToWriter is the variadic form of JoinArrayToWriter.
func JoinToWriter(w io.Writer, sep str.Str, src ...str.Str) error {
	return JoinArrayToWriter(w, sep, src)
}

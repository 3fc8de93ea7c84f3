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
	"fmt"
)

// Sprintf formats according to a format specifier and
// makes *dest an owned value holding the result.
// Arguments may refer to *dest itself.
func Sprintf(dest *Str, format string, args ...any) {
	var scratch [256]byte
	out := fmt.Appendf(scratch[:0], format, args...)
	if len(out) > 0 && &out[0] != &scratch[0] {
		// fmt already produced a heap buffer; keep it
		dest.Assign(Acquire(out))
		return
	}
	Clone(dest, RefBytes(out))
}

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
	"bufio"
	"io"

	"github.com/maxim2266/str"
)

// GetLine reads from r up to and including the next
// delim byte and stores the result in *dest. The last
// line of the input need not end with delim. When there
// is nothing left to read, it returns io.EOF and leaves
// *dest unchanged.
func GetLine(dest *str.Str, r *bufio.Reader, delim byte) error {
	line, err := r.ReadBytes(delim)
	if len(line) == 0 {
		return err
	}
	dest.Assign(str.Acquire(line))
	if err == io.EOF {
		return nil
	}
	return err
}

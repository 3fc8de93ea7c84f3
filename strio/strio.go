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

// Package strio moves string values to and from
// file descriptors, files and byte streams.
//
// Errors from the operating system are reported as
// *fs.PathError or *os.SyscallError values wrapping
// the underlying errno, so callers can test them with
// errors.Is (for example errors.Is(err, unix.EISDIR)).
package strio

import (
	"fmt"
	"io/fs"
)

// DefaultMaxFileSize is the largest file size
// accepted when Options.MaxFileSize is zero.
const DefaultMaxFileSize = 64<<20 - 1

// Options controls file input.
// The zero value is ready to use.
type Options struct {
	// MaxFileSize is the largest number of bytes a
	// file (or its decompressed content) may have.
	// Larger files are rejected with EFBIG.
	MaxFileSize int64
}

func (o *Options) maxSize() int64 {
	if o == nil || o.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return o.MaxFileSize
}

var defaultOptions Options

func patherr(op, name string, err error) *fs.PathError {
	return &fs.PathError{Op: op, Path: name, Err: err}
}

func patherrf(op, name, format string, args ...any) *fs.PathError {
	return patherr(op, name, fmt.Errorf(format, args...))
}

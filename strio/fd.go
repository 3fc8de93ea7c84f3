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
	"errors"
	"io"
	"os"

	"github.com/maxim2266/str"
	"golang.org/x/sys/unix"
)

// maxIovecs is the largest number of fragments
// passed to a single writev(2) call.
const maxIovecs = 256

// batch collects non-empty fragments and hands
// them to flush maxIovecs at a time.
type batch struct {
	iov   [][]byte
	flush func([][]byte) error
}

func (b *batch) add(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	b.iov = append(b.iov, p)
	if len(b.iov) < maxIovecs {
		return nil
	}
	return b.done()
}

func (b *batch) done() error {
	if len(b.iov) == 0 {
		return nil
	}
	err := b.flush(b.iov)
	clear(b.iov)
	b.iov = b.iov[:0]
	return err
}

func concat(b *batch, src []str.Str) error {
	for i := range src {
		if err := b.add(src[i].Bytes()); err != nil {
			return err
		}
	}
	return b.done()
}

func join(b *batch, sep str.Str, src []str.Str) error {
	for i := range src {
		if i > 0 {
			if err := b.add(sep.Bytes()); err != nil {
				return err
			}
		}
		if err := b.add(src[i].Bytes()); err != nil {
			return err
		}
	}
	return b.done()
}

// writev writes every byte of iov to fd,
// retrying interrupted calls and partial writes.
// The contents of iov are consumed.
func writev(fd int, iov [][]byte) error {
	for len(iov) > 0 {
		n, err := unix.Writev(fd, iov)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return os.NewSyscallError("writev", err)
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		for n > 0 && n >= len(iov[0]) {
			n -= len(iov[0])
			iov = iov[1:]
		}
		if n > 0 {
			iov[0] = iov[0][n:]
		}
	}
	return nil
}

func fdBatch(fd int) *batch {
	return &batch{
		iov:   make([][]byte, 0, maxIovecs),
		flush: func(iov [][]byte) error { return writev(fd, iov) },
	}
}

// ConcatArrayToFd writes the concatenation of src to
// the file descriptor fd. Empty elements are skipped.
// The descriptor is left open whatever the outcome.
func ConcatArrayToFd(fd int, src []str.Str) error {
	return concat(fdBatch(fd), src)
}

// ConcatToFd is the variadic form of ConcatArrayToFd.
func ConcatToFd(fd int, src ...str.Str) error {
	return ConcatArrayToFd(fd, src)
}

// JoinArrayToFd writes the elements of src separated
// by sep to the file descriptor fd.
func JoinArrayToFd(fd int, sep str.Str, src []str.Str) error {
	return join(fdBatch(fd), sep, src)
}

// JoinToFd is the variadic form of JoinArrayToFd.
func JoinToFd(fd int, sep str.Str, src ...str.Str) error {
	return JoinArrayToFd(fd, sep, src)
}

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

	"github.com/maxim2266/str"
	"github.com/maxim2266/str/compr"
	"golang.org/x/sys/unix"
)

func open(name string, flags int, mode uint32) (int, error) {
	for {
		fd, err := unix.Open(name, flags|unix.O_CLOEXEC, mode)
		if err == nil {
			return fd, nil
		}
		if !errors.Is(err, unix.EINTR) {
			return -1, patherr("open", name, err)
		}
	}
}

// readFile reads the regular file name into a buffer
// with one byte of spare capacity. An empty file
// yields a nil buffer.
func readFile(name string, limit int64) ([]byte, error) {
	fd, err := open(name, unix.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, patherr("stat", name, err)
	}
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFREG:
	case unix.S_IFDIR:
		return nil, patherr("read", name, unix.EISDIR)
	default:
		return nil, patherr("read", name, unix.EOPNOTSUPP)
	}
	if st.Size == 0 {
		return nil, nil
	}
	if st.Size > limit {
		return nil, patherr("read", name, unix.EFBIG)
	}
	buf := make([]byte, st.Size, st.Size+1)
	n := 0
	for n < len(buf) {
		m, err := unix.Read(fd, buf[n:])
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return nil, patherr("read", name, err)
		}
		if m == 0 {
			// the file was truncated under us
			break
		}
		n += m
	}
	return buf[:n], nil
}

// ReadAllFile replaces *dest with the content of the
// regular file name. Directories are rejected with EISDIR,
// other non-regular files with EOPNOTSUPP, and files larger
// than MaxFileSize with EFBIG. An empty file yields the null
// value. On error *dest is left unchanged.
func (o *Options) ReadAllFile(dest *str.Str, name string) error {
	buf, err := readFile(name, o.maxSize())
	if err != nil {
		return err
	}
	dest.Assign(str.Acquire(buf))
	return nil
}

// ReadAllFile calls Options.ReadAllFile with default options.
func ReadAllFile(dest *str.Str, name string) error {
	return defaultOptions.ReadAllFile(dest, name)
}

// ReadCompressedFile is like ReadAllFile, except that the
// file holds a payload compressed with algo (see
// compr.Decompression). MaxFileSize limits both the
// file and the decompressed content.
func (o *Options) ReadCompressedFile(dest *str.Str, name, algo string) error {
	dec := compr.Decompression(algo)
	if dec == nil {
		return patherrf("read", name, "unknown compression algorithm %q", algo)
	}
	src, err := readFile(name, o.maxSize())
	if err != nil {
		return err
	}
	n, err := dec.DecodedLen(src)
	if err != nil {
		return patherr("decompress", name, err)
	}
	if int64(n) > o.maxSize() {
		return patherr("decompress", name, unix.EFBIG)
	}
	if n == 0 {
		dest.Clear()
		return nil
	}
	buf := make([]byte, n, n+1)
	if err := dec.Decompress(src, buf); err != nil {
		return patherr("decompress", name, err)
	}
	dest.Assign(str.Acquire(buf))
	return nil
}

// ReadCompressedFile calls Options.ReadCompressedFile
// with default options.
func ReadCompressedFile(dest *str.Str, name, algo string) error {
	return defaultOptions.ReadCompressedFile(dest, name, algo)
}

// WriteCompressedFile compresses the concatenation of src
// with algo (see compr.Compression) and writes it to the
// file name, which is created or truncated.
func WriteCompressedFile(name, algo string, src ...str.Str) error {
	comp := compr.Compression(algo)
	if comp == nil {
		return patherrf("write", name, "unknown compression algorithm %q", algo)
	}
	var all str.Str
	str.ConcatArray(&all, src)
	out := comp.Compress(all.Bytes(), nil)
	all.Clear()

	fd, err := open(name, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	err = ConcatToFd(fd, str.RefBytes(out))
	if cerr := unix.Close(fd); err == nil && cerr != nil {
		err = patherr("close", name, cerr)
	}
	return err
}

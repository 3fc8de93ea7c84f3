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

// Package compr selects whole-payload codecs by name
// for compressed string contents.
//
// Payloads are single blocks: the decompressed size is
// known before decoding, so callers can allocate the
// destination exactly once.
package compr

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// ErrUnknownSize is returned by DecodedLen when the
// payload does not record its decompressed size.
var ErrUnknownSize = errors.New("compr: decompressed size not recorded")

// Compressor compresses whole payloads.
type Compressor interface {
	// Name is the name of the compression algorithm.
	Name() string
	// Compress appends the compressed contents
	// of src to dst and returns the result.
	Compress(src, dst []byte) []byte
}

// Decompressor decompresses whole payloads.
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Name is the name of the compression algorithm.
	// See also Compressor.Name.
	Name() string
	// DecodedLen returns the size of the
	// decompressed contents of src.
	DecodedLen(src []byte) (int, error)
	// Decompress decompresses src into dst,
	// which must be exactly DecodedLen(src) bytes.
	Decompress(src, dst []byte) error
}

type zstdCompressor struct {
	enc *zstd.Encoder
}

func (z zstdCompressor) Compress(src, dst []byte) []byte {
	return z.enc.EncodeAll(src, dst)
}

func (z zstdCompressor) Name() string { return "zstd" }

var (
	decoderOnce     sync.Once
	zstdDecoder     *zstd.Decoder
	zstdFastDecoder *zstd.Decoder
)

func decoders() {
	mk := func(opts ...zstd.DOption) *zstd.Decoder {
		opts = append(opts, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
		z, err := zstd.NewReader(nil, opts...)
		if err != nil {
			panic(err)
		}
		return z
	}
	zstdDecoder = mk()
	zstdFastDecoder = mk(zstd.IgnoreChecksum(true))
}

type zstdDecompressor struct {
	dec  **zstd.Decoder
	name string
}

func (z zstdDecompressor) Name() string { return z.name }

func (z zstdDecompressor) DecodedLen(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	var h zstd.Header
	if err := h.Decode(src); err != nil {
		return 0, fmt.Errorf("zstd header: %w", err)
	}
	if !h.HasFCS {
		return 0, ErrUnknownSize
	}
	if h.FrameContentSize > uint64(maxInt) {
		return 0, fmt.Errorf("zstd: frame size %d out of range", h.FrameContentSize)
	}
	return int(h.FrameContentSize), nil
}

func (z zstdDecompressor) Decompress(src, dst []byte) error {
	if len(src) == 0 && len(dst) == 0 {
		return nil
	}
	decoderOnce.Do(decoders)
	into := dst[:0:len(dst)]
	ret, err := (*z.dec).DecodeAll(src, into)
	if err != nil {
		return err
	}
	return checkOutput("zstd", ret, dst)
}

type s2Compressor struct{}

func (s2Compressor) Compress(src, dst []byte) []byte {
	tail := dst[len(dst):cap(dst)]
	// s2 requires non-overlapping src and dst
	if overlaps(src, tail) {
		tail = nil
	}
	got := s2.Encode(tail, src)
	if len(dst) == 0 {
		return got
	}
	if len(tail) > 0 && len(got) > 0 && &tail[0] == &got[0] {
		return dst[:len(dst)+len(got)]
	}
	return append(dst, got...)
}

func (s2Compressor) DecodedLen(src []byte) (int, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return 0, fmt.Errorf("s2 header: %w", err)
	}
	return n, nil
}

func (s2Compressor) Decompress(src, dst []byte) error {
	into := dst[:0:len(dst)]
	ret, err := s2.Decode(into, src)
	if err != nil {
		return err
	}
	return checkOutput("s2", ret, dst)
}

func (s2Compressor) Name() string { return "s2" }

// checkOutput verifies that a decoder filled
// exactly dst without reallocating it.
func checkOutput(name string, ret, dst []byte) error {
	if len(ret) != len(dst) {
		return fmt.Errorf("%s decompress: expected %d bytes; got %d", name, len(dst), len(ret))
	}
	if len(dst) > 0 && &ret[0] != &dst[0] {
		return fmt.Errorf("%s decompress: output buffer realloc'd", name)
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)

// Compression selects a compression algorithm by name.
// The returned Compressor will return the same value
// for Compressor.Name as the specified name, except
// that "zstd-better" reports "zstd". It returns nil for
// an unknown name.
func Compression(name string) Compressor {
	switch name {
	case "zstd-better":
		z, _ := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderConcurrency(1))
		return zstdCompressor{z}
	case "zstd":
		z, _ := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		return zstdCompressor{z}
	case "s2":
		return s2Compressor{}
	default:
		return nil
	}
}

// Decompression selects a decompressor by name,
// or returns nil for an unknown name. "zstd-nocrc"
// decodes zstd without verifying checksums.
func Decompression(name string) Decompressor {
	switch name {
	case "zstd":
		return zstdDecompressor{&zstdDecoder, "zstd"}
	case "zstd-nocrc":
		return zstdDecompressor{&zstdFastDecoder, "zstd-nocrc"}
	case "s2":
		return s2Compressor{}
	default:
		return nil
	}
}

func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(&a[0]))
	a1 := a0 + uintptr(len(a))
	b0 := uintptr(unsafe.Pointer(&b[0]))
	b1 := b0 + uintptr(len(b))
	return a0 < b1 && b0 < a1
}

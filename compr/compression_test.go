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

package compr

import (
	"bytes"
	"errors"
	"testing"
)

func TestS2(t *testing.T) {
	comp := Compression("s2")
	if _, ok := comp.(s2Compressor); !ok {
		t.Fatalf("bad compressor for s2: %T", comp)
	} else if n := comp.Name(); n != "s2" {
		t.Fatalf("bad compressor name %q", n)
	}
	dec := Decompression("s2")
	if _, ok := dec.(s2Compressor); !ok {
		t.Fatalf("bad decompressor for s2: %T", dec)
	} else if n := dec.Name(); n != "s2" {
		t.Fatalf("bad decompressor name %q", n)
	}
	// test separate buffers
	ctl := bytes.Repeat([]byte("foo"), 1000)
	src := append([]byte(nil), ctl...)
	cmp := comp.Compress(src, nil)
	n, err := dec.DecodedLen(cmp)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(ctl) {
		t.Fatalf("DecodedLen = %d, want %d", n, len(ctl))
	}
	dst := make([]byte, n)
	if err := dec.Decompress(cmp, dst); err != nil {
		t.Error(err)
	} else if string(ctl) != string(dst) {
		t.Error("mismatch")
	}
	// test overlapping buffers
	cmp = comp.Compress(src[10:], src[:8])
	if err := dec.Decompress(cmp[8:], dst[10:]); err != nil {
		t.Error(err)
	} else if string(ctl[10:]) != string(dst[10:]) {
		t.Error("mismatch")
	}
}

func TestZstd(t *testing.T) {
	ctl := bytes.Repeat([]byte("0123456789ABCDEF"), 4096)
	for _, cname := range []string{"zstd", "zstd-better"} {
		comp := Compression(cname)
		if comp == nil || comp.Name() != "zstd" {
			t.Fatalf("bad compressor for %s: %v", cname, comp)
		}
		cmp := comp.Compress(ctl, nil)
		if len(cmp) >= len(ctl) {
			t.Fatalf("%s: no compression", cname)
		}
		for _, dname := range []string{"zstd", "zstd-nocrc"} {
			dec := Decompression(dname)
			if dec.Name() != dname {
				t.Fatalf("bad decompressor name %q", dec.Name())
			}
			n, err := dec.DecodedLen(cmp)
			if err != nil {
				t.Fatal(err)
			}
			if n != len(ctl) {
				t.Fatalf("DecodedLen = %d, want %d", n, len(ctl))
			}
			dst := make([]byte, n)
			if err := dec.Decompress(cmp, dst); err != nil {
				t.Fatalf("%s -> %s: %s", cname, dname, err)
			}
			if !bytes.Equal(dst, ctl) {
				t.Fatalf("%s -> %s: mismatch", cname, dname)
			}
			// a destination of the wrong size is rejected
			if err := dec.Decompress(cmp, dst[:n-1]); err == nil {
				t.Fatalf("%s: short destination accepted", dname)
			}
		}
	}
}

func TestZstdEmpty(t *testing.T) {
	comp := Compression("zstd")
	cmp := comp.Compress(nil, nil)
	dec := Decompression("zstd")
	n, err := dec.DecodedLen(cmp)
	if err != nil || n != 0 {
		t.Fatalf("DecodedLen = %d, %v", n, err)
	}
	if err := dec.Decompress(cmp, nil); err != nil {
		t.Fatal(err)
	}
}

func TestCorrupt(t *testing.T) {
	junk := []byte("definitely not a compressed payload")
	for _, name := range []string{"zstd", "s2"} {
		dec := Decompression(name)
		n, err := dec.DecodedLen(junk)
		if err == nil {
			err = dec.Decompress(junk, make([]byte, n))
		}
		if err == nil {
			t.Errorf("%s: junk accepted", name)
		}
		if errors.Is(err, ErrUnknownSize) {
			t.Errorf("%s: unexpected %v", name, err)
		}
	}
}

func TestUnknown(t *testing.T) {
	if Compression("lz4") != nil || Decompression("lz4") != nil {
		t.Fatal("unknown algorithm selected")
	}
}

func TestOverlaps(t *testing.T) {
	a := make([]byte, 10, 30)
	testcases := []struct {
		a, b []byte
		want bool
	}{
		// trivial case
		{make([]byte, 10), make([]byte, 20), false},
		// adjacent
		{a, a[10:], false},
		// overlap by 5
		{a, a[5:], true},
		// overlap by 1
		{a, a[9:], true},
		{a, nil, false},
	}
	for i, tc := range testcases {
		if got := overlaps(tc.a, tc.b); got != tc.want {
			t.Errorf("case %d: overlaps(a, b) = %v", i, got)
		}
		if got := overlaps(tc.b, tc.a); got != tc.want {
			t.Errorf("case %d: overlaps(b, a) = %v", i, got)
		}
	}
}

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

// Package utf8 implements a table-driven UTF-8 decoder
// with Unicode "maximal subpart" error reporting,
// an encoder that rejects non-scalar values,
// and a few helpers over already-valid input.
package utf8

const (
	RuneSelf  = 0x80     // bytes below RuneSelf are ASCII
	UTFMax    = 4        // maximum number of bytes in an encoded codepoint
	MaxRune   = 0x10FFFF // maximum Unicode codepoint
	RuneError = 0xFFFD   // the replacement character

	// Replacement is the encoding of RuneError.
	Replacement = "\xEF\xBF\xBD"
)

// Status is the outcome of decoding one codepoint.
type Status uint8

const (
	// OK means a complete, valid sequence was decoded
	// (or the input window was empty).
	OK Status = iota
	// Error means the window starts with an invalid sequence.
	Error
	// Incomplete means the window ends inside a sequence
	// that is valid so far.
	Incomplete
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Error:
		return "ERROR"
	case Incomplete:
		return "INCOMPLETE"
	default:
		return "UNKNOWN"
	}
}

// DecodeResult describes one step of decoding.
type DecodeResult struct {
	Status Status
	// NumBytes is the number of input bytes
	// the caller should advance over.
	NumBytes uint8
	// Len is the sequence length implied by the
	// lead byte (1 to 4), also set on error.
	Len uint8
	// Codepoint is valid only when Status is OK.
	Codepoint rune
}

// seqInfo holds the static facts about a lead byte.
type seqInfo struct {
	size uint8 // sequence length, 0 if the byte cannot start a sequence
	mask uint8 // payload bits of the lead byte
	lo   uint8 // valid range of the second byte
	hi   uint8
}

// seqTable is indexed by lead byte - 0x80.
//
// The second byte range alone rejects overlong forms
// (leads C0, C1, E0 and F0), surrogates (ED) and
// codepoints above U+10FFFF (F4 and above).
var seqTable = func() (t [128]seqInfo) {
	set := func(from, to byte, info seqInfo) {
		for b := int(from); b <= int(to); b++ {
			t[b-0x80] = info
		}
	}
	// 0x80-0xBF are continuation bytes, 0xC0-0xC1 always
	// encode overlong forms, 0xF5-0xFF are beyond U+10FFFF:
	// all of them keep the zero value
	set(0xC2, 0xDF, seqInfo{2, 0x1F, 0x80, 0xBF})
	set(0xE0, 0xE0, seqInfo{3, 0x0F, 0xA0, 0xBF})
	set(0xE1, 0xEC, seqInfo{3, 0x0F, 0x80, 0xBF})
	set(0xED, 0xED, seqInfo{3, 0x0F, 0x80, 0x9F})
	set(0xEE, 0xEF, seqInfo{3, 0x0F, 0x80, 0xBF})
	set(0xF0, 0xF0, seqInfo{4, 0x07, 0x90, 0xBF})
	set(0xF1, 0xF3, seqInfo{4, 0x07, 0x80, 0xBF})
	set(0xF4, 0xF4, seqInfo{4, 0x07, 0x80, 0x8F})
	return
}()

func isCont(b byte) bool { return b&0xC0 == 0x80 }

// Decode decodes the codepoint at the start of p.
//
// An empty window decodes as OK with NumBytes == 0,
// which means "nothing consumed". For a non-empty window
// NumBytes is always at least 1:
//
//   - a byte that cannot start a sequence is an Error of 1 byte;
//   - a window shorter than the sequence announced by its
//     lead byte is Incomplete and NumBytes covers the whole window;
//   - a bad second byte is an Error of 2 bytes;
//   - a bad byte at position i (1-based, i > 2) is an Error
//     of i bytes.
func Decode(p []byte) DecodeResult {
	if len(p) == 0 {
		return DecodeResult{Status: OK}
	}
	b0 := p[0]
	if b0 < RuneSelf {
		return DecodeResult{Status: OK, NumBytes: 1, Len: 1, Codepoint: rune(b0)}
	}
	info := &seqTable[b0-0x80]
	size := info.size
	if size == 0 {
		return DecodeResult{Status: Error, NumBytes: 1, Len: 1}
	}
	if len(p) < int(size) {
		return DecodeResult{Status: Incomplete, NumBytes: uint8(len(p)), Len: size}
	}
	b1 := p[1]
	if !isCont(b1) || b1 < info.lo || b1 > info.hi {
		return DecodeResult{Status: Error, NumBytes: 2, Len: size}
	}
	cp := rune(b0&info.mask)<<6 | rune(b1&0x3F)
	for i := uint8(2); i < size; i++ {
		b := p[i]
		if !isCont(b) {
			return DecodeResult{Status: Error, NumBytes: i + 1, Len: size}
		}
		cp = cp<<6 | rune(b&0x3F)
	}
	return DecodeResult{Status: OK, NumBytes: size, Len: size, Codepoint: cp}
}

// Valid reports whether p consists entirely of
// valid UTF-8 sequences.
func Valid(p []byte) bool {
	for {
		p = p[ASCIIPrefix(p):]
		if len(p) == 0 {
			return true
		}
		r := Decode(p)
		if r.Status != OK {
			return false
		}
		p = p[r.NumBytes:]
	}
}

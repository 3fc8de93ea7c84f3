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

package main

import (
	"errors"
	"fmt"
	"go/format"
	"go/token"

	"github.com/maxim2266/str"
	"sigs.k8s.io/yaml"
)

// Config describes the file to generate.
type Config struct {
	// Package is the package clause of the output.
	Package string `json:"package"`
	// Output is the output file, or "-" for stdout.
	Output string `json:"output,omitempty"`
	// Classes lists the functions to generate.
	Classes []Class `json:"classes"`
}

// Class selects one classification function.
type Class struct {
	Class string `json:"class"`
	// Func is the name of the generated function;
	// it defaults to Is followed by the class name.
	Func string `json:"func,omitempty"`
}

var errNoClasses = errors.New("no classes selected")

// parseConfig decodes a YAML configuration.
// Unknown fields are rejected.
func parseConfig(src []byte) (*Config, error) {
	c := new(Config)
	if err := yaml.UnmarshalStrict(src, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Package == "" {
		c.Package = "charclass"
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("bad package name %q", c.Package)
	}
	if len(c.Classes) == 0 {
		return errNoClasses
	}
	seen := make(map[string]bool)
	for i := range c.Classes {
		cl := &c.Classes[i]
		if _, ok := classes[cl.Class]; !ok {
			return fmt.Errorf("unknown class %q (known classes: %v)", cl.Class, classNames())
		}
		if cl.Func == "" {
			cl.Func = funcName(cl.Class)
		}
		if !token.IsIdentifier(cl.Func) {
			return fmt.Errorf("bad function name %q", cl.Func)
		}
		if seen[cl.Func] {
			return fmt.Errorf("duplicate function %s", cl.Func)
		}
		seen[cl.Func] = true
	}
	return nil
}

// emitter accumulates the generated source
// as a list of string fragments.
type emitter struct {
	parts []str.Str
}

func (e *emitter) lit(s string) {
	e.parts = append(e.parts, str.Lit(s))
}

func (e *emitter) printf(format string, args ...any) {
	var s str.Str
	str.Sprintf(&s, format, args...)
	e.parts = append(e.parts, s)
}

func (e *emitter) release() {
	for i := range e.parts {
		e.parts[i].Clear()
	}
	e.parts = e.parts[:0]
}

const search = `
func inRanges(r rune, table [][2]rune) bool {
	lo, hi := 0, len(table)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		switch {
		case r < table[m][0]:
			hi = m
		case r > table[m][1]:
			lo = m + 1
		default:
			return true
		}
	}
	return false
}
`

// generate produces the formatted Go source
// described by c, which must be valid.
func generate(c *Config) ([]byte, error) {
	var e emitter
	defer e.release()

	e.lit("// Code generated by gencharclass; DO NOT EDIT.\n\n")
	e.printf("package %s\n", c.Package)
	for _, cl := range c.Classes {
		table := "table" + cl.Func
		e.printf("\n// %s reports whether r belongs to the %q character class.\n", cl.Func, cl.Class)
		e.printf("func %s(r rune) bool { return inRanges(r, %s) }\n\n", cl.Func, table)
		e.printf("var %s = [][2]rune{\n", table)
		for _, sp := range ranges(classes[cl.Class]) {
			e.printf("\t{0x%04X, 0x%04X},\n", sp.lo, sp.hi)
		}
		e.lit("}\n")
	}
	e.lit(search)

	var src str.Str
	str.ConcatArray(&src, e.parts)
	defer src.Clear()
	return format.Source(src.Bytes())
}

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

// Command gencharclass generates Go character
// classification functions backed by sorted
// codepoint range tables.
//
// Usage:
//
//	gencharclass [-pkg name] [-o file] -class alpha,digit,...
//	gencharclass -config classes.yaml
//
// A configuration file looks like this:
//
//	package: charclass
//	output: charclass_gen.go
//	classes:
//	  - class: alpha
//	  - class: space
//	    func: IsWhite
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/maxim2266/str"
	"github.com/maxim2266/str/strio"
)

var (
	dashclass  string
	dashpkg    string
	dasho      string
	dashconfig string
	dashv      bool
)

var logger = log.New(os.Stderr, "gencharclass: ", 0)

func init() {
	flag.StringVar(&dashclass, "class", "", "comma-separated list of classes ("+strings.Join(classNames(), ", ")+")")
	flag.StringVar(&dashpkg, "pkg", "", "package name of the output (default \"charclass\")")
	flag.StringVar(&dasho, "o", "", "output file (or - for stdout)")
	flag.StringVar(&dashconfig, "config", "", "YAML configuration file")
	flag.BoolVar(&dashv, "v", false, "verbose")
}

func exitf(f string, args ...any) {
	logger.Printf(f, args...)
	os.Exit(1)
}

// loadConfig reads the configuration file, if any,
// and applies the command-line flags on top of it.
func loadConfig() *Config {
	c := new(Config)
	if dashconfig != "" {
		var src str.Str
		if err := strio.ReadAllFile(&src, dashconfig); err != nil {
			exitf("%s", err)
		}
		var err error
		c, err = parseConfig(src.Bytes())
		src.Clear()
		if err != nil {
			exitf("%s: %s", dashconfig, err)
		}
	}
	if dashpkg != "" {
		c.Package = dashpkg
	}
	if dasho != "" {
		c.Output = dasho
	}
	if dashclass != "" {
		tk := str.NewTokenizer(str.Lit(dashclass), str.Lit(", "))
		var name str.Str
		for tk.Next(&name) {
			c.Classes = append(c.Classes, Class{Class: name.String()})
		}
	}
	return c
}

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}
	c := loadConfig()
	if err := c.validate(); err != nil {
		exitf("%s", err)
	}
	out, err := generate(c)
	if err != nil {
		exitf("formatting output: %s", err)
	}
	if dashv {
		for _, cl := range c.Classes {
			logger.Printf("%s: %d ranges", cl.Func, len(ranges(classes[cl.Class])))
		}
	}

	w := os.Stdout
	if c.Output != "" && c.Output != "-" {
		w, err = os.Create(c.Output)
		if err != nil {
			exitf("%s", err)
		}
	}
	if err := strio.ConcatToWriter(w, str.RefBytes(out)); err != nil {
		exitf("writing output: %s", err)
	}
	if w != os.Stdout {
		if err := w.Close(); err != nil {
			exitf("%s", err)
		}
	}
}

// Package gen holds the target independent parts of the protocol binding
// generator: the generation context and the pure resolution functions that
// map schema type nodes to target type specs.
package gen

import (
	"sort"
	"strings"

	"xelf.org/cdp/pdl"
	"xelf.org/xelf/bfr"
)

// Gen is the code generation context holding the buffer and additional information.
type Gen struct {
	bfr.P
	*pdl.Protocol
	Pkg    string
	Header string
	Imports
}

// Prepend writes each line in text prepended with prefix to the buffer.
// It strips the ascii whitespace bytes after the first linebreak, and tries to remove the same
// from each following line. If text starts with an empty line, that line is ignored.
func (g *Gen) Prepend(text, prefix string) {
	if text == "" {
		return
	}
	split := strings.Split(text, "\n")
	var ws int
	for i, s := range split {
		if ws == 0 && s == "" && len(split) > i+1 {
			goto Done
		}
		if ws == 0 {
			for len(s) > 0 {
				switch s[0] {
				case '\t', ' ':
					ws++
					s = s[1:]
				default:
					goto Done
				}
			}
		} else {
			for j := 0; j < ws && len(s) > 0; j++ {
				switch s[0] {
				case '\t', ' ':
					s = s[1:]
				default:
					goto Done
				}
			}
		}
	Done:
		g.Fmt("%s%s\n", prefix, s)
	}
}

// Imports has a list of alphabetically sorted dependencies. A dependency can be any string
// recognized by the generator. For go imports the dependency is a package path.
type Imports struct {
	List []string
}

// Add inserts path into the import list if not already present.
func (i *Imports) Add(path string) {
	idx := sort.SearchStrings(i.List, path)
	if idx < len(i.List) && i.List[idx] == path {
		return
	}
	i.List = append(i.List, "")
	copy(i.List[idx+1:], i.List[idx:])
	i.List[idx] = path
}

// Package gengo generates go client bindings from a protocol schema. Each
// domain becomes one file in a single target package. The shared package is
// the namespacing device: every emitted identifier is prefixed with its
// owning domain, so cross domain references are plain identifiers and can
// be resolved in any emission order.
package gengo

import (
	"fmt"
	"os"

	"xelf.org/cdp/gen"
	"xelf.org/cdp/pdl"
	"xelf.org/xelf/bfr"
)

// RtPkg is the import path of the runtime package that generated callables
// dispatch through.
const RtPkg = "xelf.org/cdp/rt"

// NewGen returns a generation context for protocol p emitting into package pkg.
func NewGen(p *pdl.Protocol, pkg string) *gen.Gen {
	return &gen.Gen{Protocol: p, Pkg: pkg, Header: "// generated code\n\n"}
}

// WriteDomainFile writes the generated module for domain d to file name.
func WriteDomainFile(g *gen.Gen, name string, d *pdl.Domain) error {
	b := bfr.Get()
	defer bfr.Put(b)
	g.P = bfr.P{Writer: b, Tab: "\t"}
	if err := WriteDomain(g, d); err != nil {
		return err
	}
	if err := os.WriteFile(name, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("write domain file %s error: %v", name, err)
	}
	return nil
}

package gengo

import (
	"fmt"
	"go/format"
	"strings"

	"xelf.org/cdp/gen"
	"xelf.org/cdp/pdl"
	"xelf.org/xelf/bfr"
)

// WriteDomain writes the generated module for domain d: the domain name
// constant and experimental accessor, one type declaration per type
// definition in schema order, three callables per command and one method
// name constant per event. The result is formatted with go/format.
func WriteDomain(g *gen.Gen, d *pdl.Domain) error {
	g.Imports.List = g.Imports.List[:0]
	b := bfr.Get()
	defer bfr.Put(b)
	// swap new buffer with context buffer
	tmp := g.Writer
	g.Writer = b
	writeIntro(g, d)
	for _, t := range d.Types {
		g.Byte('\n')
		if err := writeTypeDef(g, d, t); err != nil {
			return fmt.Errorf("write type %s.%s: %w", d.Domain, t.ID, err)
		}
	}
	for _, c := range d.Commands {
		g.Byte('\n')
		if err := writeCommand(g, d, c); err != nil {
			return fmt.Errorf("write command %s: %w", d.Method(c.Name), err)
		}
	}
	for _, e := range d.Events {
		g.Byte('\n')
		writeEvent(g, d, e)
	}
	// swap back
	g.Writer = tmp
	g.Fmt("%spackage %s\n", g.Header, g.Pkg)
	if len(g.Imports.List) > 0 {
		g.Fmt("\nimport (\n")
		for _, im := range g.Imports.List {
			g.Fmt("\t\"%s\"\n", im)
		}
		g.Fmt(")\n")
	}
	res, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", d.Domain, err)
	}
	for len(res) > 0 {
		n, err := tmp.Write(res)
		if err != nil {
			return err
		}
		res = res[n:]
	}
	return nil
}

func writeIntro(g *gen.Gen, d *pdl.Domain) {
	g.Byte('\n')
	doc := fmt.Sprintf("%sDomain is the wire method prefix of the %s domain.", d.Domain, d.Domain)
	if d.Description != "" {
		doc = fmt.Sprintf("%s\n\n%s", doc, d.Description)
	}
	g.Prepend(doc, "// ")
	g.Fmt("const %sDomain = %q\n\n", d.Domain, d.Domain)
	g.Fmt("// %sExperimental reports whether the %s domain is marked experimental in the schema.\n",
		d.Domain, d.Domain)
	g.Fmt("func %sExperimental() bool { return %v }\n", d.Domain, d.Experimental)
}

// writeTypeDef writes a type declaration: a struct for object types with an
// explicit property list, a plain alias otherwise. Enum valued string types
// alias the plain string type, the enumerated values are documented only.
func writeTypeDef(g *gen.Gen, d *pdl.Domain, t *pdl.TypeDef) error {
	name := qual(d.Domain, gen.Snake(t.ID))
	doc := name
	if t.Description != "" {
		doc = fmt.Sprintf("%s %s", name, t.Description)
	}
	if t.Experimental {
		doc += "\n\nThis type is marked experimental in the schema."
	}
	if len(t.Enum) > 0 {
		doc += fmt.Sprintf("\n\nAllowed values: %s.", strings.Join(t.Enum, ", "))
	}
	g.Prepend(doc, "// ")
	if len(t.Properties) > 0 {
		g.Fmt("type %s struct {\n", name)
		for _, p := range t.Properties {
			s, err := gen.TypeOf(p, d.Domain)
			if err != nil {
				return fmt.Errorf("property %s: %w", p.Name, err)
			}
			g.Fmt("\t%s ", qual("", gen.Snake(p.Name)))
			writeSpec(g, d, s)
			if p.Optional {
				g.Fmt(" `json:\"%s,omitempty\"`\n", p.Name)
			} else {
				g.Fmt(" `json:\"%s\"`\n", p.Name)
			}
		}
		return g.Fmt("}\n")
	}
	s, err := gen.TypeOf(&pdl.Prop{Type: t.Type, Enum: t.Enum, Items: t.Items}, d.Domain)
	if err != nil {
		return err
	}
	g.Fmt("type %s = ", name)
	writeSpec(g, d, s)
	return g.Byte('\n')
}

// writeCommand writes the three callables for command c. All three dispatch
// the same wire method in the schema's original casing.
func writeCommand(g *gen.Gen, d *pdl.Domain, c *pdl.Command) error {
	g.Imports.Add(RtPkg)
	base := qual(d.Domain, gen.Snake(c.Name))
	method := d.Method(c.Name)
	g.Fmt("// %s calls the %q command with an empty parameter map.\n", base, method)
	if c.Experimental {
		g.Fmt("//\n// The command is marked experimental in the schema.\n")
	}
	if c.Description != "" {
		g.Fmt("//\n")
		g.Prepend(c.Description, "// ")
	}
	if len(c.Parameters) > 0 {
		g.Fmt("//\n// Parameters:\n//\n")
		if err := writeDocProps(g, d, c.Parameters); err != nil {
			return err
		}
	}
	if len(c.Returns) > 0 {
		g.Fmt("//\n// Returns:\n//\n")
		if err := writeDocProps(g, d, c.Returns); err != nil {
			return err
		}
	} else {
		g.Fmt("//\n// No return values.\n")
	}
	g.Fmt("func %s(s rt.Session) (rt.Result, error) {\n", base)
	g.Fmt("\treturn s.ExecuteCommand(%q, rt.Params{}, rt.Opts{})\n}\n\n", method)
	g.Fmt("// %sParams calls %q passing params through to the call verbatim.\n", base, method)
	g.Fmt("func %sParams(s rt.Session, params rt.Params) (rt.Result, error) {\n", base)
	g.Fmt("\treturn s.ExecuteCommand(%q, params, rt.Opts{})\n}\n\n", method)
	g.Fmt("// %sOpts calls %q with params and per call option overrides.\n", base, method)
	g.Fmt("func %sOpts(s rt.Session, params rt.Params, opts rt.Opts) (rt.Result, error) {\n", base)
	g.Fmt("\treturn s.ExecuteCommand(%q, params, opts)\n}\n", method)
	return nil
}

// writeDocProps renders one listing line per parameter or return value as
// 'name - type - description'. A missing description renders without the
// trailing segment, optional types carry a question mark suffix. The lines
// are tab indented so gofmt treats the listing as a preformatted block and
// keeps it verbatim.
func writeDocProps(g *gen.Gen, d *pdl.Domain, ps []*pdl.Prop) error {
	for _, p := range ps {
		s, err := gen.TypeOf(p, d.Domain)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		t := s.Type
		if s.Opt {
			t += "?"
		}
		if p.Description != "" {
			g.Fmt("//\t%s - %s - %s\n", p.Name, t, strings.ReplaceAll(p.Description, "\n", " "))
		} else {
			g.Fmt("//\t%s - %s\n", p.Name, t)
		}
	}
	return nil
}

func writeEvent(g *gen.Gen, d *pdl.Domain, e *pdl.Event) {
	name := qual(d.Domain, "event_"+gen.Snake(e.Name))
	doc := fmt.Sprintf("%s is the method name of the %q event.", name, d.Method(e.Name))
	if e.Description != "" {
		doc = fmt.Sprintf("%s\n\n%s", doc, e.Description)
	}
	g.Prepend(doc, "// ")
	g.Fmt("const %s = %q\n", name, d.Method(e.Name))
}

// writeSpec writes the go representation of spec s. Optional types get a
// pointer wrapper unless the representation already admits nil.
func writeSpec(g *gen.Gen, d *pdl.Domain, s gen.Spec) {
	if s.Opt && !nilable(s.Type) {
		g.Byte('*')
	}
	writeSpecType(g, d, s.Type)
}

func nilable(t string) bool {
	return t == "dict" || t == "any" || t == "list" || strings.HasPrefix(t, "list|")
}

func writeSpecType(g *gen.Gen, d *pdl.Domain, t string) {
	switch t {
	case "bool":
		g.Fmt("bool")
	case "int":
		g.Fmt("int64")
	case "real":
		g.Fmt("float64")
	case "str":
		g.Fmt("string")
	case "dict":
		g.Fmt("map[string]interface{}")
	case "any":
		g.Fmt("interface{}")
	case "list":
		g.Fmt("[]interface{}")
	default:
		if strings.HasPrefix(t, "list|") {
			g.Fmt("[]")
			writeSpecType(g, d, t[5:])
			return
		}
		if i := strings.IndexByte(t, '.'); i >= 0 {
			g.Fmt(qual(t[:i], t[i+1:]))
			return
		}
		g.Fmt(qual(d.Domain, t))
	}
}

var casing = map[string]string{
	"id": "ID", "url": "URL", "dom": "DOM", "css": "CSS",
	"html": "HTML", "http": "HTTP", "json": "JSON", "api": "API",
}

// qual composes the emitted go identifier for a snake spec name owned by
// domain. The domain qualifier keeps the schema's original casing.
func qual(domain, snake string) string {
	var b strings.Builder
	b.WriteString(domain)
	for _, seg := range strings.Split(snake, "_") {
		if seg == "" {
			continue
		}
		if c, ok := casing[seg]; ok {
			b.WriteString(c)
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}

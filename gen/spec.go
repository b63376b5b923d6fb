package gen

import (
	"fmt"
	"strings"

	"xelf.org/cdp/pdl"
)

// ErrUnresolvedRef means a reference string does not decompose into a valid
// domain and type identifier pair.
var ErrUnresolvedRef = fmt.Errorf("unresolved type reference")

// Spec is the resolved target type of a schema type node. Type uses the
// generator's spec vocabulary: the primitive names bool, int, real, str,
// dict, list and any, list element types separated by a pipe, and type
// references as '<snake id>' for the current domain or 'Domain.<snake id>'
// across domains. Opt marks types that require a nullable wrapper.
type Spec struct {
	Type string
	Opt  bool
}

// Prim maps a primitive schema type name to the spec vocabulary. The table
// is total by a deliberate permissiveness policy: the upstream schema
// evolves independently of this generator, so every unrecognized name maps
// to any instead of failing.
func Prim(name string) string {
	switch name {
	case "boolean":
		return "bool"
	case "integer":
		return "int"
	case "number":
		return "real"
	case "string":
		return "str"
	case "object":
		return "dict"
	case "array":
		return "list"
	}
	return "any"
}

// Ref resolves a reference string within domain. A qualified reference
// 'Dom.TypeId' keeps the domain qualifier with its original casing and
// converts the type id, a bare 'TypeId' resolves scoped to the current
// domain. The composition is purely lexical and does not check that the
// referenced type exists.
func Ref(ref, domain string) (string, error) {
	parts := strings.Split(ref, ".")
	switch len(parts) {
	case 1:
		if parts[0] != "" {
			return Snake(parts[0]), nil
		}
	case 2:
		if parts[0] != "" && parts[1] != "" {
			return fmt.Sprintf("%s.%s", parts[0], Snake(parts[1])), nil
		}
	}
	return "", fmt.Errorf("%w %q in domain %s", ErrUnresolvedRef, ref, domain)
}

// TypeOf resolves a property, parameter or return node to its type spec.
// Enum valued strings collapse to the plain str type, the enumerated
// constraint stays documentation only.
func TypeOf(p *pdl.Prop, domain string) (Spec, error) {
	s := Spec{Opt: p.Optional}
	switch {
	case p.Ref != "":
		r, err := Ref(p.Ref, domain)
		if err != nil {
			return s, err
		}
		s.Type = r
	case p.Type == "array" && p.Items != nil:
		el, err := TypeOf(p.Items, domain)
		if err != nil {
			return s, err
		}
		s.Type = "list|" + el.Type
	default:
		s.Type = Prim(p.Type)
	}
	return s, nil
}

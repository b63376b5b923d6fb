package gengo

import (
	"go/format"
	"strings"
	"testing"

	"xelf.org/cdp/pdl"
	"xelf.org/xelf/bfr"
)

func genDomain(t *testing.T, d *pdl.Domain) string {
	t.Helper()
	p := &pdl.Protocol{Domains: []*pdl.Domain{d}}
	var b strings.Builder
	g := NewGen(p, "cdp")
	g.P = bfr.P{Writer: &b, Tab: "\t"}
	if err := WriteDomain(g, d); err != nil {
		t.Fatalf("write domain %s error: %v", d.Domain, err)
	}
	return b.String()
}

func TestWriteDomainMinimal(t *testing.T) {
	d := &pdl.Domain{
		Domain:       "IO",
		Experimental: true,
		Types: []*pdl.TypeDef{
			{ID: "StreamHandle", Description: "Handle of a stream.", Type: "string"},
		},
	}
	want := `// generated code

package cdp

// IODomain is the wire method prefix of the IO domain.
const IODomain = "IO"

// IOExperimental reports whether the IO domain is marked experimental in the schema.
func IOExperimental() bool { return true }

// IOStreamHandle Handle of a stream.
type IOStreamHandle = string
`
	if got := genDomain(t, d); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestWriteDomainNavigate(t *testing.T) {
	d := &pdl.Domain{
		Domain:      "Page",
		Description: "Actions and events related to the inspected page belong to the page domain.",
		Commands: []*pdl.Command{{
			Name:        "navigate",
			Description: "Navigates current page to the given URL.",
			Parameters: []*pdl.Prop{
				{Name: "url", Type: "string", Description: "URL to navigate the page to."},
			},
		}},
	}
	res := genDomain(t, d)
	if n := strings.Count(res, `s.ExecuteCommand("Page.navigate"`); n != 3 {
		t.Errorf("want wire method dispatched 3 times got %d:\n%s", n, res)
	}
	for _, sub := range []string{
		"import (\n\t\"xelf.org/cdp/rt\"\n)",
		"func PageNavigate(s rt.Session) (rt.Result, error)",
		"func PageNavigateParams(s rt.Session, params rt.Params) (rt.Result, error)",
		"func PageNavigateOpts(s rt.Session, params rt.Params, opts rt.Opts) (rt.Result, error)",
		"s.ExecuteCommand(\"Page.navigate\", rt.Params{}, rt.Opts{})",
		"// Parameters:\n//\n//\turl - str - URL to navigate the page to.",
		"// No return values.",
		"func PageExperimental() bool { return false }",
	} {
		if !strings.Contains(res, sub) {
			t.Errorf("missing %q in:\n%s", sub, res)
		}
	}
	if res != genDomain(t, d) {
		t.Errorf("generation is not reproducible")
	}
	fmtd, err := format.Source([]byte(res))
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	if string(fmtd) != res {
		t.Errorf("output is not format stable:\n%s", res)
	}
}

func TestWriteDomainTypes(t *testing.T) {
	d := &pdl.Domain{
		Domain: "Page",
		Types: []*pdl.TypeDef{
			{ID: "FrameId", Type: "string"},
			{ID: "TransitionType", Type: "string", Enum: []string{"link", "typed"}},
			{ID: "Quads", Type: "array", Items: &pdl.Prop{Type: "number"}},
			{ID: "Frame", Type: "object", Properties: []*pdl.Prop{
				{Name: "id", Ref: "FrameId"},
				{Name: "parentId", Ref: "FrameId", Optional: true},
				{Name: "loaderId", Ref: "Network.LoaderId"},
				{Name: "url", Type: "string"},
			}},
		},
	}
	res := genDomain(t, d)
	for _, sub := range []string{
		"type PageFrameID = string",
		"type PageTransitionType = string",
		"// Allowed values: link, typed.",
		"type PageQuads = []float64",
		"type PageFrame struct {",
		"ID       PageFrameID     `json:\"id\"`",
		"ParentID *PageFrameID    `json:\"parentId,omitempty\"`",
		"LoaderID NetworkLoaderID `json:\"loaderId\"`",
		"URL      string          `json:\"url\"`",
	} {
		if !strings.Contains(res, sub) {
			t.Errorf("missing %q in:\n%s", sub, res)
		}
	}
}

func TestWriteDomainBadRef(t *testing.T) {
	d := &pdl.Domain{
		Domain: "Page",
		Commands: []*pdl.Command{{
			Name:       "navigate",
			Parameters: []*pdl.Prop{{Name: "url", Ref: "A.B.C"}},
		}},
	}
	p := &pdl.Protocol{Domains: []*pdl.Domain{d}}
	var b strings.Builder
	g := NewGen(p, "cdp")
	g.P = bfr.P{Writer: &b, Tab: "\t"}
	err := WriteDomain(g, d)
	if err == nil || !strings.Contains(err.Error(), "Page.navigate") {
		t.Errorf("want error naming the command got %v", err)
	}
}

func TestWriteDomainEvents(t *testing.T) {
	d := &pdl.Domain{
		Domain: "Page",
		Events: []*pdl.Event{
			{Name: "loadEventFired"},
			{Name: "frameNavigated", Description: "Fired once navigation of the frame has completed."},
		},
	}
	res := genDomain(t, d)
	for _, sub := range []string{
		`const PageEventLoadEventFired = "Page.loadEventFired"`,
		`const PageEventFrameNavigated = "Page.frameNavigated"`,
		"// Fired once navigation of the frame has completed.",
	} {
		if !strings.Contains(res, sub) {
			t.Errorf("missing %q in:\n%s", sub, res)
		}
	}
}

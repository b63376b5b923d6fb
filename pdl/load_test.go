package pdl

import (
	"errors"
	"testing"

	"xelf.org/cdp/log"
)

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"1-2", "1-2"},
		{"1-3", "1-3"},
		{"tot", "tot"},
		{"", "tot"},
		{"2-0", "tot"},
		{"nonsense", "tot"},
	}
	for _, test := range tests {
		if got := ResolveVersion(test.token); got != test.want {
			t.Errorf("resolve %q want %s got %s", test.token, test.want, got)
		}
	}
}

func TestLoad(t *testing.T) {
	l := &Loader{Dir: "testdata", Log: &log.Test{TB: t}}
	p, err := l.Load("tot")
	if err != nil {
		t.Fatalf("load tot error: %v", err)
	}
	d := p.Domain("Page")
	if d == nil {
		t.Fatalf("want Page domain got %v", p.Domains)
	}
	if d.Type("FrameId") == nil {
		t.Errorf("want FrameId type")
	}
	if got := d.Method("navigate"); got != "Page.navigate" {
		t.Errorf("want Page.navigate got %s", got)
	}
	// unrecognized tokens fall back to the tip-of-tree schema
	if _, err := l.Load("nonsense"); err != nil {
		t.Errorf("load fallback error: %v", err)
	}
	// no schema file bundled for 1-2 in testdata
	if _, err := l.Load("1-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want not found error got %v", err)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `nope`},
		{"no domains", `{}`},
		{"empty domains", `{"domains": []}`},
		{"wrong shape", `{"domains": "Page"}`},
		{"unnamed domain", `{"domains": [{"description": "x"}]}`},
		{"duplicate domain", `{"domains": [{"domain": "Page"}, {"domain": "Page"}]}`},
		{"unnamed type", `{"domains": [{"domain": "Page", "types": [{"type": "string"}]}]}`},
		{"duplicate type", `{"domains": [{"domain": "Page", "types": [
			{"id": "FrameId", "type": "string"}, {"id": "FrameId", "type": "string"}]}]}`},
		{"unnamed command", `{"domains": [{"domain": "Page", "commands": [{"description": "x"}]}]}`},
	}
	for _, test := range tests {
		if _, err := Read([]byte(test.raw)); !errors.Is(err, ErrMalformed) {
			t.Errorf("read %s want malformed error got %v", test.name, err)
		}
	}
	p, err := Read([]byte(`{"domains": [{"domain": "Page", "experimental": true}]}`))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if d := p.Domain("Page"); d == nil || !d.Experimental {
		t.Errorf("want experimental Page domain got %+v", p.Domains)
	}
}

package pdl

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"xelf.org/cdp/log"
)

// Version tokens recognized by the loader. Any other or absent token
// resolves to the tip-of-tree schema.
const (
	V12 = "1-2"
	V13 = "1-3"
	Tot = "tot"
)

var (
	// ErrNotFound means no schema file exists for the resolved version.
	ErrNotFound = fmt.Errorf("protocol schema not found")
	// ErrMalformed means the schema document does not decode into the
	// expected top level shape.
	ErrMalformed = fmt.Errorf("malformed protocol schema")
)

// ResolveVersion returns the schema version for token, falling back to the
// tip-of-tree alias for unrecognized or absent tokens.
func ResolveVersion(token string) string {
	switch token {
	case V12, V13, Tot:
		return token
	}
	return Tot
}

// Loader reads protocol schema files from a version directory layout
// '<dir>/<version>/protocol.json'.
type Loader struct {
	Dir string
	Log log.Logger
}

// NewLoader returns a loader reading from dir using the root logger.
func NewLoader(dir string) *Loader { return &Loader{Dir: dir, Log: log.Root} }

// Load resolves the version token, reads and decodes the schema file and
// checks the document invariants. The resolved version is logged once for
// build diagnostics and has no effect on the generated output.
func (l *Loader) Load(token string) (*Protocol, error) {
	v := ResolveVersion(token)
	path := filepath.Join(l.Dir, v, "protocol.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w for version %s at %s", ErrNotFound, v, path)
		}
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	p, err := Read(raw)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	if l.Log != nil {
		l.Log.Debug("loaded protocol schema", "version", v, "domains", len(p.Domains))
	}
	return p, nil
}

// Read decodes and validates a protocol schema document.
func Read(raw []byte) (*Protocol, error) {
	var p Protocol
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(p.Domains) == 0 {
		return nil, fmt.Errorf("%w: no domains", ErrMalformed)
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validate(p *Protocol) error {
	names := make(map[string]bool, len(p.Domains))
	for _, d := range p.Domains {
		if d.Domain == "" {
			return fmt.Errorf("%w: domain without name", ErrMalformed)
		}
		if names[d.Domain] {
			return fmt.Errorf("%w: duplicate domain %s", ErrMalformed, d.Domain)
		}
		names[d.Domain] = true
		ids := make(map[string]bool, len(d.Types))
		for _, t := range d.Types {
			if t.ID == "" {
				return fmt.Errorf("%w: type without id in domain %s", ErrMalformed, d.Domain)
			}
			if ids[t.ID] {
				return fmt.Errorf("%w: duplicate type %s in domain %s", ErrMalformed, t.ID, d.Domain)
			}
			ids[t.ID] = true
		}
		for _, c := range d.Commands {
			if c.Name == "" {
				return fmt.Errorf("%w: command without name in domain %s", ErrMalformed, d.Domain)
			}
		}
	}
	return nil
}

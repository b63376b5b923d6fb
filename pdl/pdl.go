// Package pdl provides the data model and loader for the Chrome DevTools
// Protocol schema. The schema is a versioned JSON document holding a list of
// domains, each grouping type definitions, commands and events.
package pdl

import "fmt"

// Protocol is the top level schema document.
type Protocol struct {
	Version Version   `json:"version"`
	Domains []*Domain `json:"domains"`
}

type Version struct {
	Major string `json:"major"`
	Minor string `json:"minor"`
}

// Domain groups the types, commands and events of one functional area of the
// inspected target. Types may reference other domains' types but never own
// them.
type Domain struct {
	Domain       string     `json:"domain"`
	Description  string     `json:"description,omitempty"`
	Experimental bool       `json:"experimental,omitempty"`
	Deprecated   bool       `json:"deprecated,omitempty"`
	Dependencies []string   `json:"dependencies,omitempty"`
	Types        []*TypeDef `json:"types,omitempty"`
	Commands     []*Command `json:"commands,omitempty"`
	Events       []*Event   `json:"events,omitempty"`
}

// TypeDef declares a named type owned by a domain. The id is unique within
// the owning domain.
type TypeDef struct {
	ID           string   `json:"id"`
	Description  string   `json:"description,omitempty"`
	Experimental bool     `json:"experimental,omitempty"`
	Deprecated   bool     `json:"deprecated,omitempty"`
	Type         string   `json:"type"`
	Enum         []string `json:"enum,omitempty"`
	Properties   []*Prop  `json:"properties,omitempty"`
	Items        *Prop    `json:"items,omitempty"`
}

// Prop describes an object property, command parameter, return value or
// array element. It carries either a primitive type name or a reference of
// the form 'TypeId' or 'Domain.TypeId'.
type Prop struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Type         string   `json:"type,omitempty"`
	Ref          string   `json:"$ref,omitempty"`
	Enum         []string `json:"enum,omitempty"`
	Items        *Prop    `json:"items,omitempty"`
	Optional     bool     `json:"optional,omitempty"`
	Experimental bool     `json:"experimental,omitempty"`
	Deprecated   bool     `json:"deprecated,omitempty"`
}

// Command is a single invocable remote operation.
type Command struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Experimental bool    `json:"experimental,omitempty"`
	Deprecated   bool    `json:"deprecated,omitempty"`
	Parameters   []*Prop `json:"parameters,omitempty"`
	Returns      []*Prop `json:"returns,omitempty"`
}

// Event is a notification sent by the target without a matching request.
type Event struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Experimental bool    `json:"experimental,omitempty"`
	Deprecated   bool    `json:"deprecated,omitempty"`
	Parameters   []*Prop `json:"parameters,omitempty"`
}

// Method returns the wire method identifier for command name in domain d.
// It uses the schema's original casing verbatim.
func (d *Domain) Method(name string) string {
	return fmt.Sprintf("%s.%s", d.Domain, name)
}

// Domain returns the domain named name or nil.
func (p *Protocol) Domain(name string) *Domain {
	if p != nil {
		for _, d := range p.Domains {
			if d.Domain == name {
				return d
			}
		}
	}
	return nil
}

// Type returns the type definition for id or nil.
func (d *Domain) Type(id string) *TypeDef {
	if d != nil {
		for _, t := range d.Types {
			if t.ID == id {
				return t
			}
		}
	}
	return nil
}

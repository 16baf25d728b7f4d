package parse

import (
	"slices"
	"strings"
)

// Capability is a behavior a generated kind type can be derived with, given by
// "derive(...)". Equality, copying, and debug formatting by String are always
// there.
type Capability string

const (
	// CapValues generates XValues() []X and (X).IsValid() bool.
	CapValues Capability = "values"

	// CapParse generates ParseX(string) (X, error).
	CapParse Capability = "parse"

	// CapText implements encoding.TextMarshaler and encoding.TextUnmarshaler.
	CapText Capability = "text"

	// CapJSON implements json.Marshaler and json.Unmarshaler as JSON strings.
	CapJSON Capability = "json"

	// CapYAML implements the marshaler interfaces of gopkg.in/yaml.v3 without
	// importing it.
	CapYAML Capability = "yaml"

	// CapSQL implements driver.Valuer and sql.Scanner.
	CapSQL Capability = "sql"

	// CapMethod generates a Kind method on every variant type.
	CapMethod Capability = "method"
)

// Capabilities lists all capabilities in the order their code is generated.
var Capabilities = []Capability{CapValues, CapParse, CapText, CapJSON, CapYAML, CapSQL, CapMethod}

// ParseCapability looks up a capability by its name.
func ParseCapability(name string) (Capability, bool) {
	c := Capability(name)
	return c, slices.Contains(Capabilities, c)
}

// Requires returns capabilities the capability depends on.
func (c Capability) Requires() []Capability {
	switch c {
	case CapText, CapJSON, CapYAML, CapSQL:
		return []Capability{CapParse}
	}
	return nil
}

func capabilityNames() string {
	names := make([]string, len(Capabilities))
	for i, c := range Capabilities {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

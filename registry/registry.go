// Package registry defines the typed surface of supported verusd RPC
// methods: one static descriptor per method, declaring the ordered parameter
// schema the daemon expects.
//
// Descriptors are validated against before any network I/O. The table is
// fixed at startup; adding a method is a data change, not a structural one.
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind is the JSON type expected for a positional parameter.
type Kind int

const (
	KindObject Kind = iota + 1
	KindArray
	KindInt
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Param describes one positional parameter of a method.
type Param struct {
	Name     string
	Kind     Kind
	Required bool
}

// Descriptor is the static metadata for one supported RPC method. Supplied
// params may be any prefix of the schema that covers the required ones.
type Descriptor struct {
	Name   string
	Params []Param

	// ExactArity requires the full parameter list to be supplied, with no
	// trailing optionals omitted.
	ExactArity bool

	// RequireTrue, when non-zero, names the index of a boolean parameter
	// that must be literally true. Funds-moving methods are only supported
	// in return-transaction mode: the daemon hands back the raw transaction
	// instead of signing and broadcasting it.
	RequireTrue int
}

// UnknownMethodError is returned by Lookup for a method outside the table.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %q", e.Method)
}

// ParamError is returned by Validate when supplied params do not match the
// descriptor's schema.
type ParamError struct {
	Method string
	Index  int
	Detail string
}

func (e *ParamError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: param %d: %s", e.Method, e.Index, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Method, e.Detail)
}

// Lookup returns the descriptor for the given method name.
func Lookup(method string) (Descriptor, error) {
	d, ok := methods[method]
	if !ok {
		return Descriptor{}, &UnknownMethodError{Method: method}
	}
	return d, nil
}

// Methods returns the sorted names of all supported methods.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the supplied positional params against the descriptor:
// arity, presence of required params, JSON kind of each supplied value, and
// the method's special rules. It performs no I/O and mutates nothing.
func (d Descriptor) Validate(params []json.RawMessage) error {
	if len(params) > len(d.Params) {
		return &ParamError{Method: d.Name, Index: -1,
			Detail: fmt.Sprintf("too many params: got %d, at most %d", len(params), len(d.Params))}
	}
	if d.ExactArity && len(params) != len(d.Params) {
		return &ParamError{Method: d.Name, Index: -1,
			Detail: fmt.Sprintf("requires exactly %d params, got %d", len(d.Params), len(params))}
	}

	for i, spec := range d.Params {
		if i >= len(params) {
			if spec.Required {
				return &ParamError{Method: d.Name, Index: i,
					Detail: fmt.Sprintf("missing required param %q", spec.Name)}
			}
			continue
		}
		if !matchesKind(params[i], spec.Kind) {
			return &ParamError{Method: d.Name, Index: i,
				Detail: fmt.Sprintf("param %q must be %s", spec.Name, spec.Kind)}
		}
	}

	if d.RequireTrue > 0 {
		if d.RequireTrue >= len(params) || !bytes.Equal(bytes.TrimSpace(params[d.RequireTrue]), []byte("true")) {
			spec := d.Params[d.RequireTrue]
			return &ParamError{Method: d.Name, Index: d.RequireTrue,
				Detail: fmt.Sprintf("param %q must be true: %s is only supported in return-transaction mode", spec.Name, d.Name)}
		}
	}

	return nil
}

// matchesKind reports whether raw is a JSON value of the expected kind.
// KindFloat accepts any JSON number; KindInt only integer-form numbers.
func matchesKind(raw json.RawMessage, kind Kind) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return false
	}

	switch kind {
	case KindObject:
		return trimmed[0] == '{'
	case KindArray:
		return trimmed[0] == '['
	case KindString:
		return trimmed[0] == '"'
	case KindBool:
		return bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false"))
	case KindInt:
		return isNumber(trimmed) && !strings.ContainsAny(string(trimmed), ".eE")
	case KindFloat:
		return isNumber(trimmed)
	default:
		return false
	}
}

func isNumber(trimmed []byte) bool {
	c := trimmed[0]
	return c == '-' || (c >= '0' && c <= '9')
}

package prereq

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformed matches every MalformedError via errors.Is.
var ErrMalformed = errors.New("malformed prerequisite expression")

// MalformedError reports an expression whose tag or payload shape does not
// match the grammar.
type MalformedError struct {
	Tag    string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("%v: %s", ErrMalformed, e.Reason)
	}
	return fmt.Sprintf("%v: %q: %s", ErrMalformed, e.Tag, e.Reason)
}

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

func malformed(tag, reason string) error {
	return &MalformedError{Tag: tag, Reason: reason}
}

// MarshalJSON encodes e as a single-key object keyed by its tag.
func (e Expr[C]) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case KindCourse:
		return json.Marshal(map[string]C{TagCourse: e.ref})
	case KindOr, KindAnd:
		children := e.children
		if children == nil {
			children = []Expr[C]{}
		}
		return json.Marshal(map[string][]Expr[C]{e.kind.String(): children})
	default:
		return nil, malformed("", "cannot encode zero expression")
	}
}

// UnmarshalJSON decodes a tagged object. Exactly one known tag is accepted.
func (e *Expr[C]) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return malformed("", "expected an object with one of \"course number\", \"or\", \"and\"")
	}
	if len(obj) != 1 {
		return malformed("", fmt.Sprintf("expected exactly one tag, got %d", len(obj)))
	}
	for tag, raw := range obj {
		kind, ok := kindForTag(tag)
		if !ok {
			return malformed(tag, "unknown tag")
		}
		if isJSONNull(raw) {
			return malformed(tag, "payload is null")
		}
		if kind == KindCourse {
			var ref C
			if err := json.Unmarshal(raw, &ref); err != nil {
				return malformed(tag, "invalid course reference: "+err.Error())
			}
			*e = Course(ref)
			return nil
		}
		if !isJSONArray(raw) {
			return malformed(tag, "payload must be a list")
		}
		var children []Expr[C]
		if err := json.Unmarshal(raw, &children); err != nil {
			return err
		}
		*e = Expr[C]{kind: kind, children: cloneChildren(children)}
	}
	return nil
}

func kindForTag(tag string) (Kind, bool) {
	switch tag {
	case TagCourse:
		return KindCourse, true
	case TagOr:
		return KindOr, true
	case TagAnd:
		return KindAnd, true
	}
	return KindInvalid, false
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isJSONArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

// MarshalYAML mirrors MarshalJSON.
func (e Expr[C]) MarshalYAML() (any, error) {
	switch e.kind {
	case KindCourse:
		return map[string]C{TagCourse: e.ref}, nil
	case KindOr, KindAnd:
		children := e.children
		if children == nil {
			children = []Expr[C]{}
		}
		return map[string][]Expr[C]{e.kind.String(): children}, nil
	default:
		return nil, malformed("", "cannot encode zero expression")
	}
}

// UnmarshalYAML decodes a single-key mapping node.
func (e *Expr[C]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return malformed("", fmt.Sprintf("line %d: expected a mapping with one of \"course number\", \"or\", \"and\"", value.Line))
	}
	if len(value.Content) != 2 {
		return malformed("", fmt.Sprintf("line %d: expected exactly one tag, got %d", value.Line, len(value.Content)/2))
	}
	tag, payload := value.Content[0].Value, value.Content[1]
	kind, ok := kindForTag(tag)
	if !ok {
		return malformed(tag, fmt.Sprintf("line %d: unknown tag", value.Line))
	}
	if payload.ShortTag() == "!!null" {
		return malformed(tag, fmt.Sprintf("line %d: payload is null", payload.Line))
	}
	if kind == KindCourse {
		var ref C
		if err := payload.Decode(&ref); err != nil {
			return malformed(tag, "invalid course reference: "+err.Error())
		}
		*e = Course(ref)
		return nil
	}
	if payload.Kind != yaml.SequenceNode {
		return malformed(tag, fmt.Sprintf("line %d: payload must be a list", payload.Line))
	}
	children := make([]Expr[C], len(payload.Content))
	for i, n := range payload.Content {
		if err := children[i].UnmarshalYAML(n); err != nil {
			return err
		}
	}
	*e = Expr[C]{kind: kind, children: children}
	return nil
}

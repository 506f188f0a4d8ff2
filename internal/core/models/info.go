package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is one serialized component. On the wire it is a 2-element array:
// ["Light", {"color": [1, 1, 1], ...}].
type Entry struct {
	Class TypeName
	Data  map[string]any
}

// Info is the serialized form of a component host.
type Info struct {
	UID        string  `json:"uid,omitempty" yaml:"uid,omitempty"`
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Components []Entry `json:"components,omitempty" yaml:"components,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{string(e.Class), e.dataOrEmpty()})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: expected [class, data], got %d elements", ErrInvalidEntry, len(raw))
	}
	var class string
	if err := json.Unmarshal(raw[0], &class); err != nil || class == "" {
		return fmt.Errorf("%w: class name must be a non-empty string", ErrInvalidEntry)
	}
	var data map[string]any
	if err := json.Unmarshal(raw[1], &data); err != nil {
		return fmt.Errorf("%w: data of %s: %v", ErrInvalidEntry, class, err)
	}
	e.Class = TypeName(class)
	e.Data = data
	return nil
}

func (e Entry) MarshalYAML() (any, error) {
	return []any{string(e.Class), e.dataOrEmpty()}, nil
}

func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("%w: line %d: expected [class, data]", ErrInvalidEntry, value.Line)
	}
	var class string
	if err := value.Content[0].Decode(&class); err != nil || class == "" {
		return fmt.Errorf("%w: line %d: class name must be a non-empty string", ErrInvalidEntry, value.Line)
	}
	var data map[string]any
	if err := value.Content[1].Decode(&data); err != nil {
		return fmt.Errorf("%w: data of %s: %v", ErrInvalidEntry, class, err)
	}
	e.Class = TypeName(class)
	e.Data = data
	return nil
}

func (e Entry) dataOrEmpty() map[string]any {
	if e.Data == nil {
		return map[string]any{}
	}
	return e.Data
}

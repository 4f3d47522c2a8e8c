package card

import (
	"bytes"
	"encoding/json"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Field is a single named value inside a Record.
type Field struct {
	Name  string
	Value any
}

// Record is one structured data item rendered as a single card.
// Field order is the order the fields appeared in the input; lookups of
// missing fields report absence instead of failing.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a record from fields in the given order. A repeated name
// overwrites the earlier value but keeps its original position.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// Set assigns a value, appending the field if it is new.
func (r *Record) Set(name string, value any) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Get returns the value for name and whether the record has it.
func (r Record) Get(name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Fields returns a copy of the fields in input order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len reports the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Clone returns an independent copy. Nested values are shared.
func (r Record) Clone() Record {
	return NewRecord(r.fields...)
}

// Equal reports whether both records hold the same fields in the same order.
func (r Record) Equal(o Record) bool {
	if len(r.fields) != len(o.fields) {
		return false
	}
	for i := range r.fields {
		if r.fields[i].Name != o.fields[i].Name {
			return false
		}
		if !reflect.DeepEqual(r.fields[i].Value, o.fields[i].Value) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the record as an object with its fields in input order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the key order.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrNotRecord
	}

	var out Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		out.Set(name, v)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}

// UnmarshalYAML reads a YAML mapping keeping the key order.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return ErrNotRecord
	}
	var out Record
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v any
		if err := value.Content[i+1].Decode(&v); err != nil {
			return err
		}
		out.Set(value.Content[i].Value, v)
	}
	*r = out
	return nil
}

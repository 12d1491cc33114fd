package option

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes Some(v) as the JSON of v and None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and any other value as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}

// IsZero reports whether the Option is None, so struct fields tagged
// json:",omitzero" are omitted when absent.
func (o Option[T]) IsZero() bool {
	return !o.present
}

// MarshalYAML encodes Some(v) as the YAML of v and None as null.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a null node as None and any other node as Some.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = None[T]()
		return nil
	}
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}

// Scan implements sql.Scanner, reading SQL NULL as None.
func (o *Option[T]) Scan(src any) error {
	var null sql.Null[T]
	if err := null.Scan(src); err != nil {
		return err
	}
	if !null.Valid {
		*o = None[T]()
		return nil
	}
	*o = Some(null.V)
	return nil
}

// Value implements driver.Valuer, writing None as SQL NULL.
func (o Option[T]) Value() (driver.Value, error) {
	return sql.Null[T]{V: o.value, Valid: o.present}.Value()
}

package ordered

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Maps and sets are encoded by their entries in ascending key order. The
// internal tree structure is never encoded. Decoding into a non-empty
// container merges the decoded entries into it.

// MarshalJSON encodes a map as a JSON object. Keys have to be strings,
// integers, floats, booleans or implement encoding.TextMarshaler.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for k, v := range m.All() {
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		ktext, err := keyText(k)
		if err != nil {
			return nil, err
		}
		kjson, err := json.Marshal(ktext)
		if err != nil {
			return nil, err
		}
		vjson, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		b.Write(kjson)
		b.WriteByte(':')
		b.Write(vjson)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, inserting its members in
// document order.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected JSON object, got %v", ErrIllegalArguments, tok)
	}
	t := m.engine()
	n := 0
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		ktext, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expected object key, got %v", ErrIllegalArguments, tok)
		}
		key, err := parseKey[K](ktext)
		if err != nil {
			return err
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if _, _, err := t.Insert(key, value); err != nil {
			return err
		}
		n++
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	tracer().Debugf("ordered: decoded %d map entries from JSON", n)
	return nil
}

// MarshalYAML encodes a map as a YAML mapping with keys in ascending order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		var knode, vnode yaml.Node
		if err := knode.Encode(k); err != nil {
			return nil, err
		}
		if err := vnode.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &knode, &vnode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the map.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected YAML mapping at line %d", ErrIllegalArguments, node.Line)
	}
	t := m.engine()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		if _, _, err := t.Insert(key, value); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes a set as a JSON array in ascending order.
func (s *Set[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Elements())
}

// UnmarshalJSON decodes a JSON array into the set.
func (s *Set[K]) UnmarshalJSON(data []byte) error {
	var elems []K
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	return s.insertSlice(elems)
}

// MarshalYAML encodes a set as a YAML sequence in ascending order.
func (s *Set[K]) MarshalYAML() (any, error) {
	return s.Elements(), nil
}

// UnmarshalYAML decodes a YAML sequence into the set.
func (s *Set[K]) UnmarshalYAML(node *yaml.Node) error {
	var elems []K
	if err := node.Decode(&elems); err != nil {
		return err
	}
	return s.insertSlice(elems)
}

func (s *Set[K]) insertSlice(elems []K) error {
	t := s.engine()
	for _, e := range elems {
		if _, _, err := t.Insert(e, struct{}{}); err != nil {
			return err
		}
	}
	return nil
}

// keyText renders a map key as a JSON object key.
func keyText(key any) (string, error) {
	switch k := key.(type) {
	case encoding.TextMarshaler:
		b, err := k.MarshalText()
		return string(b), err
	case string:
		return k, nil
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
}

// parseKey is the inverse of keyText.
func parseKey[K any](text string) (K, error) {
	var key K
	if u, ok := any(&key).(encoding.TextUnmarshaler); ok {
		err := u.UnmarshalText([]byte(text))
		return key, err
	}
	v := reflect.ValueOf(&key).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, v.Type().Bits())
		if err != nil {
			return key, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, 10, v.Type().Bits())
		if err != nil {
			return key, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, v.Type().Bits())
		if err != nil {
			return key, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return key, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
		}
		v.SetBool(b)
	default:
		return key, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
	return key, nil
}

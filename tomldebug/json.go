// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

// Package tomldebug encodes and decodes toml.Value trees as "typed JSON":
// every node carries a "type" key naming its TOML type, in the style of
// mvdan.cc/sh/v3/syntax/typedjson. Unlike that package, tomldebug needs no
// reflection: toml.Value is a small closed union rather than an open AST,
// so a plain type switch covers every case and the TODO-shaped corner
// cases of a reflective encoder (interface fields, anonymous embedding)
// never arise.
package tomldebug

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"mvdan.cc/toml"
)

type node struct {
	Type     string          `json:"type"`
	Value    json.RawMessage `json:"value,omitempty"`
	Bool     *bool           `json:"bool,omitempty"`
	Int      string          `json:"int,omitempty"`
	Float    *float64        `json:"float,omitempty"`
	DTKind   string          `json:"dtKind,omitempty"`
	Raw      string          `json:"raw,omitempty"`
	Keys     []string        `json:"keys,omitempty"`
	Fields   map[string]node `json:"fields,omitempty"`
	Elems    []node          `json:"elems,omitempty"`
	Explicit bool            `json:"explicit,omitempty"`
}

// Encode writes root to w as typed JSON, indenting with "  ".
func Encode(w io.Writer, root *toml.Table) error {
	n, err := encodeValue(root)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}

func encodeValue(v toml.Value) (node, error) {
	switch val := v.(type) {
	case *toml.Table:
		keys := val.Keys()
		fields := make(map[string]node, len(keys))
		for _, k := range keys {
			child, _ := val.Get(k)
			enc, err := encodeValue(child)
			if err != nil {
				return node{}, err
			}
			fields[k] = enc
		}
		return node{Type: "table", Keys: keys, Fields: fields, Explicit: val.Explicit()}, nil
	case *toml.Array:
		elems := val.Elems()
		out := make([]node, len(elems))
		for i, e := range elems {
			enc, err := encodeValue(e)
			if err != nil {
				return node{}, err
			}
			out[i] = enc
		}
		return node{Type: "array", Elems: out}, nil
	case toml.String:
		raw, err := json.Marshal(string(val))
		if err != nil {
			return node{}, err
		}
		return node{Type: "string", Value: raw}, nil
	case toml.Bool:
		b := bool(val)
		return node{Type: "bool", Bool: &b}, nil
	case toml.Integer:
		return node{Type: "integer", Int: val.String()}, nil
	case toml.Float:
		f := float64(val)
		return node{Type: "float", Float: &f}, nil
	case toml.DateTime:
		return node{Type: "datetime", DTKind: val.Kind.String(), Raw: val.Raw}, nil
	default:
		return node{}, fmt.Errorf("tomldebug: unsupported value type %T", v)
	}
}

// Decode reads a typed JSON document produced by Encode and rebuilds the
// equivalent toml.Value tree.
func Decode(r io.Reader) (*toml.Table, error) {
	var n node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, err
	}
	v, err := decodeNode(n)
	if err != nil {
		return nil, err
	}
	tbl, ok := v.(*toml.Table)
	if !ok {
		return nil, fmt.Errorf("tomldebug: root node has type %q, want table", n.Type)
	}
	return tbl, nil
}

func decodeNode(n node) (toml.Value, error) {
	switch n.Type {
	case "table":
		t := toml.NewTable()
		for _, k := range n.Keys {
			child, ok := n.Fields[k]
			if !ok {
				return nil, fmt.Errorf("tomldebug: table missing field %q named in keys", k)
			}
			v, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			t.Set(k, v)
		}
		return t, nil
	case "array":
		a := toml.NewArray()
		for _, e := range n.Elems {
			v, err := decodeNode(e)
			if err != nil {
				return nil, err
			}
			a.Append(v)
		}
		return a, nil
	case "string":
		var s string
		if err := json.Unmarshal(n.Value, &s); err != nil {
			return nil, err
		}
		return toml.String(s), nil
	case "bool":
		if n.Bool == nil {
			return nil, fmt.Errorf("tomldebug: bool node missing value")
		}
		return toml.Bool(*n.Bool), nil
	case "integer":
		bi, ok := new(big.Int).SetString(n.Int, 10)
		if !ok {
			return nil, fmt.Errorf("tomldebug: invalid integer literal %q", n.Int)
		}
		return toml.NewBigInteger(bi), nil
	case "float":
		if n.Float == nil {
			return nil, fmt.Errorf("tomldebug: float node missing value")
		}
		return toml.Float(*n.Float), nil
	case "datetime":
		kind, err := parseDateTimeKind(n.DTKind)
		if err != nil {
			return nil, err
		}
		return toml.DateTime{Kind: kind, Raw: n.Raw}, nil
	default:
		return nil, fmt.Errorf("tomldebug: unknown node type %q", n.Type)
	}
}

func parseDateTimeKind(s string) (toml.DateTimeKind, error) {
	switch s {
	case "OffsetDateTime":
		return toml.OffsetDateTime, nil
	case "LocalDateTime":
		return toml.LocalDateTime, nil
	case "LocalDate":
		return toml.LocalDate, nil
	case "LocalTime":
		return toml.LocalTime, nil
	}
	return 0, fmt.Errorf("tomldebug: unknown datetime kind %q", s)
}

// Package entities provides the document model shared by the merge engine,
// the translation store and the transport layers.
package entities

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Document is an untyped game-content document (item, actor, journal entry)
// or a partial translation of one. It mirrors the JSON shape used by the
// host application, so nested values are map[string]any, []any and scalars.
type Document map[string]any

// Compile-time check that documents can be handed to toolkit code as entities
var _ core.Entity = Document(nil)

// GetID returns the document identifier, preferring _id over id
func (d Document) GetID() string {
	if id, ok := d["_id"].(string); ok && id != "" {
		return id
	}
	id, _ := d["id"].(string)
	return id
}

// GetType returns the document type tag (item, feat, npc, ...)
func (d Document) GetType() string {
	t, _ := d["type"].(string)
	return t
}

// GetName returns the display name of the document
func (d Document) GetName() string {
	name, _ := d["name"].(string)
	return name
}

// Clone returns an independent deep copy of the document
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(d))
}

// AsMap reports whether v is a mapping and returns it with a uniform type
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case Document:
		return map[string]any(m), m != nil
	default:
		return nil, false
	}
}

// AsSlice reports whether v is an ordered sequence and returns it
func AsSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	case []Document:
		out := make([]any, len(s))
		for i := range s {
			out[i] = map[string]any(s[i])
		}
		return out, true
	default:
		return nil, false
	}
}

// DeepClone copies any JSON-shaped value. Scalars are returned as-is.
func DeepClone(v any) any {
	switch t := v.(type) {
	case Document:
		if t == nil {
			return t
		}
		return Document(cloneMap(t))
	case map[string]any:
		if t == nil {
			return t
		}
		return cloneMap(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = DeepClone(e)
		}
		return out
	case []map[string]any:
		if t == nil {
			return t
		}
		out := make([]map[string]any, len(t))
		for i, e := range t {
			out[i] = cloneMap(e)
		}
		return out
	case []string:
		if t == nil {
			return t
		}
		return append([]string(nil), t...)
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = DeepClone(v)
	}
	return out
}

// GetPath reads a dotted path such as "system.description.value".
func GetPath(m map[string]any, path string) (any, bool) {
	if m == nil || path == "" {
		return nil, false
	}
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		node, ok := AsMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetPath writes value at a dotted path, creating intermediate mappings.
// An intermediate scalar is replaced by a mapping.
func SetPath(m map[string]any, path string, value any) {
	if m == nil || path == "" {
		return
	}
	parts := strings.Split(path, ".")
	node := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := AsMap(node[part])
		if !ok {
			next = map[string]any{}
			node[part] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

// SortedKeys returns the keys of m in lexical order
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Plain rewrites v using only map[string]any and []any containers, the
// shapes wire encoders such as structpb accept
func Plain(v any) any {
	if d, ok := v.(Document); ok && d == nil {
		return nil
	}
	if m, ok := AsMap(v); ok {
		out := make(map[string]any, len(m))
		for k, child := range m {
			out[k] = Plain(child)
		}
		return out
	}
	if s, ok := AsSlice(v); ok {
		out := make([]any, len(s))
		for i, child := range s {
			out[i] = Plain(child)
		}
		return out
	}
	if s, ok := v.([]string); ok {
		out := make([]any, len(s))
		for i, child := range s {
			out[i] = child
		}
		return out
	}
	return v
}

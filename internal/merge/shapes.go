package merge

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// copyCollection deep-copies a collection that arrives either as an ordered
// sequence or as an id-keyed mapping, and returns it as a sequence. Mapping
// members missing both _id and id get their key as _id, unless the keys are
// plain array positions.
func copyCollection(v any) []any {
	if s, ok := entities.AsSlice(v); ok {
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = entities.DeepClone(e)
		}
		return out
	}

	m, ok := entities.AsMap(v)
	if !ok {
		return []any{}
	}

	keys, positional := orderedKeys(m)
	out := make([]any, 0, len(m))
	for _, k := range keys {
		e := entities.DeepClone(m[k])
		if element, ok := entities.AsMap(e); ok && !positional {
			_, hasID := element["_id"]
			_, hasAltID := element["id"]
			if !hasID && !hasAltID {
				element["_id"] = k
			}
		}
		out = append(out, e)
	}
	return out
}

// copyKeyed deep-copies a keyed collection such as system.activities.
// A sequence is re-keyed by each member's _id (or id, or position).
func copyKeyed(v any) map[string]any {
	if m, ok := entities.AsMap(v); ok {
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = entities.DeepClone(e)
		}
		return out
	}

	s, ok := entities.AsSlice(v)
	if !ok {
		return map[string]any{}
	}

	out := make(map[string]any, len(s))
	for i, e := range s {
		key := strconv.Itoa(i)
		if element, ok := entities.AsMap(e); ok {
			if id, ok := firstText(element["_id"], element["id"]); ok {
				key = id
			}
		}
		out[key] = entities.DeepClone(e)
	}
	return out
}

// translationElements normalizes a translation collection into a sequence of
// mappings. A mapping's keys become each element's _key. Members that are not
// mappings are malformed and skipped.
func translationElements(v any) []map[string]any {
	if s, ok := entities.AsSlice(v); ok {
		out := make([]map[string]any, 0, len(s))
		for _, e := range s {
			if element, ok := entities.AsMap(e); ok {
				out = append(out, element)
			}
		}
		return out
	}

	m, ok := entities.AsMap(v)
	if !ok {
		return nil
	}

	keys, _ := orderedKeys(m)
	out := make([]map[string]any, 0, len(m))
	for _, k := range keys {
		element, ok := entities.AsMap(m[k])
		if !ok {
			continue
		}
		keyed := make(map[string]any, len(element)+1)
		keyed["_key"] = k
		for field, value := range element {
			keyed[field] = value
		}
		out = append(out, keyed)
	}
	return out
}

// orderedKeys returns the keys of m in a stable order: numerically when all
// keys are array positions, lexically otherwise
func orderedKeys(m map[string]any) ([]string, bool) {
	keys := entities.SortedKeys(m)
	positions := make(map[string]int, len(keys))
	for _, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 {
			return keys, false
		}
		positions[k] = n
	}

	sort.Slice(keys, func(i, j int) bool {
		return positions[keys[i]] < positions[keys[j]]
	})
	return keys, len(keys) > 0
}

// hasData reports whether v is a non-empty collection
func hasData(v any) bool {
	if s, ok := entities.AsSlice(v); ok {
		return len(s) > 0
	}
	if m, ok := entities.AsMap(v); ok {
		return len(m) > 0
	}
	return false
}

// ensureMap returns parent[key] as a mapping, creating it when absent or
// when the existing value is not a mapping
func ensureMap(parent map[string]any, key string) map[string]any {
	if m, ok := entities.AsMap(parent[key]); ok {
		return m
	}
	m := map[string]any{}
	parent[key] = m
	return m
}

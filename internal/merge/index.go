package merge

import (
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// Identity fields read from source elements when building an index
var (
	effectIdentity = []string{"label", "name", "_id", "id"}
	itemIdentity   = []string{"name", "_id", "id"}
)

// Lookup order for translation elements: explicit key, then name, then
// the secondary identifiers of each collection kind
var (
	effectLookup = []string{"_key", "name", "label", "id", "_id"}
	itemLookup   = []string{"_key", "name", "id", "_id"}
)

// index maps normalized identity keys to positions in a collection.
// The first element claiming a key keeps it; later elements with the same
// normalized identity are unreachable through that key.
type index map[string]int

func buildIndex(elements []any, fields []string) index {
	idx := make(index, len(elements)*len(fields))
	for pos, e := range elements {
		element, ok := entities.AsMap(e)
		if !ok {
			continue
		}
		idx.add(element, fields, pos)
	}
	return idx
}

// add registers every identity of element that is not already taken
func (idx index) add(element map[string]any, fields []string, pos int) {
	for _, field := range fields {
		key, ok := Normalize(element[field])
		if !ok {
			continue
		}
		if _, taken := idx[key]; taken {
			continue
		}
		idx[key] = pos
	}
}

// find returns the position matched by the first identity candidate of
// translation that hits the index
func (idx index) find(translation map[string]any, fields []string) (int, bool) {
	for _, field := range fields {
		key, ok := Normalize(translation[field])
		if !ok {
			continue
		}
		if pos, hit := idx[key]; hit {
			return pos, true
		}
	}
	return -1, false
}

// placeholder returns the position of the nth element whose field holds the
// default value synthesis gives to a translation without a name. Unnamed
// translations pair with placeholders in order, so merging the same
// translation again lands on the elements created the first time.
func placeholder(elements []any, field, value string, n int) (int, bool) {
	want, _ := Normalize(value)
	for pos, e := range elements {
		element, ok := entities.AsMap(e)
		if !ok {
			continue
		}
		if key, ok := Normalize(element[field]); !ok || key != want {
			continue
		}
		if n == 0 {
			return pos, true
		}
		n--
	}
	return -1, false
}

package merge

import (
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// MergeEffects overlays translated effects onto a source effect collection.
// Matched effects get their label, icon and description replaced; unmatched
// translations are appended as synthesized effects. A translation with no
// label of its own reuses a placeholder effect left by an earlier merge.
func (m *Merger) MergeEffects(source, translation any) []any {
	out := copyCollection(source)
	if translation == nil {
		return out
	}

	idx := buildIndex(out, effectIdentity)
	unnamed := 0
	for _, t := range translationElements(translation) {
		pos, ok := idx.find(t, effectLookup)
		if _, named := effectLabel(t); !ok && !named {
			pos, ok = placeholder(out, "label", defaultEffectLabel, unnamed)
			unnamed++
		}
		if ok {
			target, _ := entities.AsMap(out[pos])
			m.patchEffectText(target, t)
			idx.add(target, effectIdentity, pos)
			continue
		}

		effect := m.synthesizeEffect(t)
		idx.add(effect, effectIdentity, len(out))
		out = append(out, effect)
	}

	return out
}

// MergeEmbedded overlays translated embedded items (features, inventory)
// onto a source item collection
func (m *Merger) MergeEmbedded(source, translation any) []any {
	out := copyCollection(source)
	if translation == nil {
		return out
	}

	idx := buildIndex(out, itemIdentity)
	unnamed := 0
	for _, t := range translationElements(translation) {
		pos, ok := idx.find(t, itemLookup)
		if _, named := itemName(t); !ok && !named {
			pos, ok = placeholder(out, "name", defaultItemName, unnamed)
			unnamed++
		}
		if ok {
			target, _ := entities.AsMap(out[pos])
			m.patchItemText(target, t)
			idx.add(target, itemIdentity, pos)
			continue
		}

		item := m.synthesizeItem(t)
		idx.add(item, itemIdentity, len(out))
		out = append(out, item)
	}

	return out
}

// MergeActivities merges activities by their key. Activity keys are stable
// identifiers, so there is no fuzzy matching: a known key gets its name
// replaced, an unknown key is inserted as given.
func (m *Merger) MergeActivities(source, translation any) map[string]any {
	out := copyKeyed(source)

	translated, ok := entities.AsMap(translation)
	if !ok {
		return out
	}

	for _, key := range entities.SortedKeys(translated) {
		t, ok := entities.AsMap(translated[key])
		if !ok {
			continue
		}

		existing, present := out[key]
		if !present || existing == nil {
			out[key] = entities.DeepClone(t)
			continue
		}
		if target, ok := entities.AsMap(existing); ok {
			m.patchActivityText(target, t)
		}
	}

	return out
}

// MergeAdvancement overlays translated advancement titles and hints.
//
// Two translation shapes are accepted. A mapping keyed by the exact source
// title (no normalization) updates title and hint and records provenance
// under flags.<namespace>. A mapping carrying byId updates title and hint of
// the entry with that identifier.
func (m *Merger) MergeAdvancement(source, translation any) []any {
	out := copyAdvancement(source)

	translated, ok := entities.AsMap(translation)
	if !ok {
		return out
	}

	if byID, present := translated["byId"]; present {
		if byID, ok := entities.AsMap(byID); ok {
			m.mergeAdvancementByID(out, byID)
		}
		return out
	}

	m.mergeAdvancementByTitle(out, translated)
	return out
}

func (m *Merger) mergeAdvancementByTitle(entries []any, translated map[string]any) {
	for _, e := range entries {
		entry, ok := entities.AsMap(e)
		if !ok {
			continue
		}
		title, ok := entry["title"].(string)
		if !ok {
			continue
		}
		t, ok := entities.AsMap(translated[title])
		if !ok {
			continue
		}

		m.patchAdvancementText(entry, t)

		name, _ := firstText(t["name"], t["title"], entry["title"])
		m.stampFlag(entry, "name", name)
		if description, ok := firstText(t["description"], t["hint"], entry["hint"]); ok {
			m.stampFlag(entry, "description", description)
		}
	}
}

func (m *Merger) mergeAdvancementByID(entries []any, byID map[string]any) {
	for _, e := range entries {
		entry, ok := entities.AsMap(e)
		if !ok {
			continue
		}
		id, ok := firstText(entry["_id"], entry["id"])
		if !ok {
			continue
		}
		if t, ok := entities.AsMap(byID[id]); ok {
			m.patchAdvancementText(entry, t)
		}
	}
}

// copyAdvancement accepts the advancement collection as a sequence, an
// id-keyed mapping, or a mapping wrapping the entries under byId
func copyAdvancement(v any) []any {
	if m, ok := entities.AsMap(v); ok {
		if byID, ok := entities.AsMap(m["byId"]); ok {
			return copyCollection(byID)
		}
	}
	return copyCollection(v)
}

// MergeFlags deep-merges translated flags into the source flags. Keys absent
// from the translation are never removed; nil translation values are skipped.
func (m *Merger) MergeFlags(source, translation any) map[string]any {
	out := map[string]any{}
	if flags, ok := entities.AsMap(source); ok {
		out = entities.DeepClone(flags).(map[string]any)
	}

	translated, ok := entities.AsMap(translation)
	if !ok {
		return out
	}

	deepMerge(out, translated)
	return out
}

func deepMerge(dst, src map[string]any) {
	for key, value := range src {
		if value == nil {
			continue
		}
		if nested, ok := entities.AsMap(value); ok {
			if existing, ok := entities.AsMap(dst[key]); ok {
				deepMerge(existing, nested)
				continue
			}
			dst[key] = entities.DeepClone(map[string]any(nested))
			continue
		}
		dst[key] = entities.DeepClone(value)
	}
}

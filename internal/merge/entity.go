package merge

import (
	"strings"

	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// Translation keys with structured handling
const (
	keyEffects           = "effects"
	keyItems             = "items"
	keyFeatures          = "features"
	keyEmbeddedItems     = "embeddedItems"
	keyActivities        = "activities"
	keySystemActivities  = "system.activities"
	keyAdvancement       = "advancement"
	keySystemAdvancement = "system.advancement"
	keyFlags             = "flags"
	keySystem            = "system"
)

// systemTextPaths are the only paths under system that a translation given as
// a nested system mapping may overwrite. Everything else under system is
// rules data.
var systemTextPaths = []string{
	"description.value",
	"description.chat",
	"unidentified.description",
	"requirements",
}

// MergeEntity overlays a translation onto a whole document.
//
// An empty translation returns source itself. Otherwise source is copied and
// each translation key is applied: collections go through their collection
// merger, flags are deep-merged, a nested system mapping contributes only
// its text fields, dotted keys are written at their path and any other key
// overwrites the field of the same name.
func (m *Merger) MergeEntity(source, translation entities.Document) entities.Document {
	if len(translation) == 0 {
		return source
	}

	out := source.Clone()
	if out == nil {
		out = entities.Document{}
	}
	doc := map[string]any(out)

	for _, key := range entities.SortedKeys(translation) {
		value := translation[key]
		if value == nil {
			continue
		}

		switch key {
		case keyEffects:
			doc[keyEffects] = m.MergeEffects(doc[keyEffects], value)
		case keyItems, keyFeatures, keyEmbeddedItems:
			doc[keyItems] = m.MergeEmbedded(embeddedBase(doc), value)
		case keyActivities, keySystemActivities:
			m.mergeEntityActivities(doc, value)
		case keyAdvancement, keySystemAdvancement:
			m.mergeEntityAdvancement(doc, value)
		case keyFlags:
			if _, ok := entities.AsMap(value); ok {
				doc[keyFlags] = m.MergeFlags(doc[keyFlags], value)
			}
		case keySystem:
			applySystemText(doc, value)
		default:
			if strings.Contains(key, ".") {
				entities.SetPath(doc, key, entities.DeepClone(value))
				continue
			}
			doc[key] = entities.DeepClone(value)
		}
	}

	m.reapplyNested(doc, translation)
	return out
}

// embeddedBase picks the embedded item collection of a document
func embeddedBase(doc map[string]any) any {
	if items, ok := doc[keyItems]; ok && items != nil {
		return items
	}
	return doc[keyEmbeddedItems]
}

// mergeEntityActivities merges into both places activities live across host
// versions: a top-level activities field and system.activities
func (m *Merger) mergeEntityActivities(doc map[string]any, value any) {
	system, hasSystem := entities.AsMap(doc[keySystem])
	if _, ok := doc[keyActivities]; ok || !hasSystem {
		doc[keyActivities] = m.MergeActivities(doc[keyActivities], value)
	}
	if hasSystem {
		system[keyActivities] = m.MergeActivities(system[keyActivities], value)
	}
}

func (m *Merger) mergeEntityAdvancement(doc map[string]any, value any) {
	system, hasSystem := entities.AsMap(doc[keySystem])
	if _, ok := doc[keyAdvancement]; ok || !hasSystem {
		doc[keyAdvancement] = m.MergeAdvancement(doc[keyAdvancement], value)
	}
	if hasSystem {
		system[keyAdvancement] = m.MergeAdvancement(system[keyAdvancement], value)
	}
}

// applySystemText copies the whitelisted text paths of a translated system
// mapping onto the document
func applySystemText(doc map[string]any, value any) {
	translated, ok := entities.AsMap(value)
	if !ok {
		return
	}

	for _, path := range systemTextPaths {
		v, ok := entities.GetPath(translated, path)
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		entities.SetPath(ensureMap(doc, keySystem), path, s)
	}
}

// reapplyNested merges collections a translation carries inside a nested
// system mapping, which the keyed pass only mines for text. Top-level
// effects are merged once, by the keyed pass.
func (m *Merger) reapplyNested(doc map[string]any, translation entities.Document) {
	translatedSystem, ok := entities.AsMap(translation[keySystem])
	if !ok {
		return
	}
	system, ok := entities.AsMap(doc[keySystem])
	if !ok {
		return
	}

	if advancement := translatedSystem[keyAdvancement]; advancement != nil {
		system[keyAdvancement] = m.MergeAdvancement(system[keyAdvancement], advancement)
	}
	if activities := translatedSystem[keyActivities]; activities != nil {
		system[keyActivities] = m.MergeActivities(system[keyActivities], activities)
	}
}

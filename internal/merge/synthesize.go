package merge

import (
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

const (
	defaultEffectIcon  = "icons/svg/mystery-man.svg"
	defaultEffectLabel = "Unnamed Effect"
	defaultItemName    = "Unnamed"
	defaultItemType    = "item"
)

// synthesizeEffect builds a complete effect for a translation that matched
// nothing. Mechanical fields are always empty; only text comes from the
// translation.
func (m *Merger) synthesizeEffect(translation map[string]any) map[string]any {
	label, ok := effectLabel(translation)
	if !ok {
		label = defaultEffectLabel
	}
	icon, ok := text(translation["icon"])
	if !ok {
		icon = defaultEffectIcon
	}

	effect := map[string]any{
		"label":    label,
		"icon":     icon,
		"changes":  []any{},
		"duration": map[string]any{},
		"disabled": false,
		"flags":    map[string]any{},
	}
	if description, ok := text(translation["description"]); ok {
		m.stampFlag(effect, "description", description)
	}
	return effect
}

// synthesizeItem builds a complete embedded item for a translation that
// matched nothing
func (m *Merger) synthesizeItem(translation map[string]any) map[string]any {
	name, ok := itemName(translation)
	if !ok {
		name = defaultItemName
	}
	itemType, ok := text(translation["type"])
	if !ok {
		itemType = defaultItemType
	}

	system := map[string]any{}
	if v, ok := entities.GetPath(translation, "system.description.value"); ok {
		if description, ok := v.(string); ok {
			entities.SetPath(system, "description.value", description)
		}
	}

	return map[string]any{
		"name":   name,
		"type":   itemType,
		"system": system,
		"flags":  map[string]any{},
	}
}

// effectLabel picks the label a translation gives an effect, in the same
// order patching uses, with the translation key as the last resort
func effectLabel(translation map[string]any) (string, bool) {
	return firstText(translation["label"], translation["name"], translation["_key"])
}

func itemName(translation map[string]any) (string, bool) {
	return firstText(translation["name"], translation["_key"])
}

package merge

import (
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// patchEffectText writes translated label, icon and description onto a
// matched effect. The description has no schema field on effects, so it goes
// to flags.<namespace>.description.
func (m *Merger) patchEffectText(target, translation map[string]any) {
	if label, ok := firstText(translation["label"], translation["name"]); ok {
		target["label"] = label
		if _, hasName := target["name"]; hasName {
			target["name"] = label
		}
	}
	if icon, ok := text(translation["icon"]); ok {
		target["icon"] = icon
	}
	if description, ok := text(translation["description"]); ok {
		m.stampFlag(target, "description", description)
	}
}

// patchItemText writes translated name and system.description.value onto a
// matched embedded item
func (m *Merger) patchItemText(target, translation map[string]any) {
	if name, ok := text(translation["name"]); ok {
		target["name"] = name
	}
	if v, ok := entities.GetPath(translation, "system.description.value"); ok {
		if description, ok := v.(string); ok {
			entities.SetPath(target, "system.description.value", description)
		}
	}
}

func (m *Merger) patchActivityText(target, translation map[string]any) {
	if name, ok := text(translation["name"]); ok {
		target["name"] = name
	}
}

// patchAdvancementText writes title and hint. Translations use either the
// schema names (title, hint) or the Babele names (name, description).
func (m *Merger) patchAdvancementText(target, translation map[string]any) {
	if title, ok := firstText(translation["title"], translation["name"]); ok {
		target["title"] = title
	}
	if hint, ok := firstText(translation["hint"], translation["description"]); ok {
		target["hint"] = hint
	}
}

// stampFlag sets flags.<namespace>.<key> on target
func (m *Merger) stampFlag(target map[string]any, key string, value any) {
	flags := ensureMap(target, "flags")
	scoped := ensureMap(flags, m.namespace)
	scoped[key] = value
}

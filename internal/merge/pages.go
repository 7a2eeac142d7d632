package merge

import (
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// MergePages overlays translations onto journal entry pages. The translation
// is a mapping keyed by page _id or page name.
func (m *Merger) MergePages(pages, translations any) []any {
	out := copyCollection(pages)

	translated, ok := entities.AsMap(translations)
	if !ok {
		return out
	}

	for _, p := range out {
		page, ok := entities.AsMap(p)
		if !ok {
			continue
		}
		if t, ok := pageTranslation(page, translated); ok {
			patchPageText(page, t)
		}
	}
	return out
}

func pageTranslation(page, translated map[string]any) (map[string]any, bool) {
	for _, field := range []string{"_id", "name"} {
		key, ok := text(page[field])
		if !ok {
			continue
		}
		if t, ok := entities.AsMap(translated[key]); ok {
			return t, true
		}
	}
	return nil, false
}

// pageFields maps translation fields to page paths
var pageFields = []struct {
	from string
	to   string
}{
	{from: "name", to: "name"},
	{from: "text", to: "text.content"},
	{from: "caption", to: "image.caption"},
	{from: "src", to: "src"},
	{from: "tooltip", to: "system.tooltip"},
}

func patchPageText(page, translation map[string]any) {
	for _, f := range pageFields {
		if s, ok := text(translation[f.from]); ok {
			entities.SetPath(page, f.to, s)
		}
	}
}

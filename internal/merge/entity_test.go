package merge_test

import (
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

// fighterFeature is a class feature with every collection kind populated
func fighterFeature() entities.Document {
	return entities.Document{
		"_id":  "feat0001",
		"name": "Action Surge",
		"type": "feat",
		"system": map[string]any{
			"description": map[string]any{"value": "<p>Push yourself beyond your limits.</p>", "chat": ""},
			"uses":        map[string]any{"max": "1", "recovery": []any{map[string]any{"period": "sr"}}},
			"activities": map[string]any{
				"dnd5eactivity000": map[string]any{"type": "utility", "name": "Surge", "activation": map[string]any{"type": "special"}},
			},
			"advancement": []any{
				map[string]any{"_id": "adv1", "type": "ScaleValue", "title": "Surges", "configuration": map[string]any{"identifier": "surges"}},
			},
		},
		"effects": []any{
			map[string]any{
				"_id":      "eff1",
				"label":    "Surging",
				"changes":  []any{map[string]any{"key": "system.attributes.movement.walk", "mode": 2, "value": "10"}},
				"duration": map[string]any{"rounds": 1},
				"disabled": false,
			},
		},
		"items": []any{
			map[string]any{"_id": "sub1", "name": "Extra Action", "type": "feat"},
		},
		"flags": map[string]any{
			"core":  map[string]any{"sourceId": "Compendium.dnd5e.classfeatures.feat0001"},
			"dnd5e": map[string]any{"riders": map[string]any{"effect": []any{}}},
		},
	}
}

func (s *MergerTestSuite) TestMergeEntity_Preservation() {
	source := fighterFeature()

	s.Equal(fighterFeature(), s.merger.MergeEntity(source, nil))
	s.Equal(fighterFeature(), s.merger.MergeEntity(source, entities.Document{}))
	s.Equal(fighterFeature(), s.merger.MergeEntity(source, entities.Document{"name": nil}))
}

func (s *MergerTestSuite) TestMergeEntity_FieldIsolation() {
	out := s.merger.MergeEntity(fighterFeature(), entities.Document{"name": "Oleada de acción"})

	expected := fighterFeature()
	expected["name"] = "Oleada de acción"
	s.Equal(expected, out)
}

func (s *MergerTestSuite) TestMergeEntity_DoesNotMutateSource() {
	source := fighterFeature()

	_ = s.merger.MergeEntity(source, entities.Document{
		"name":    "Oleada de acción",
		"effects": []any{map[string]any{"name": "surging", "description": "Moviéndote"}},
		"flags":   map[string]any{"core": map[string]any{"sourceId": "changed"}},
	})

	s.Equal(fighterFeature(), source)
}

func (s *MergerTestSuite) TestMergeEntity_FullTranslation() {
	translation := entities.Document{
		"name": "Oleada de acción",
		"system": map[string]any{
			"description": map[string]any{"value": "<p>Supera tus límites.</p>"},
			"uses":        map[string]any{"max": "99"},
			"activities": map[string]any{
				"dnd5eactivity000": map[string]any{"name": "Oleada"},
			},
			"advancement": map[string]any{
				"Surges": map[string]any{"name": "Oleadas"},
			},
		},
		"effects": map[string]any{
			"Surging": map[string]any{"name": "En oleada", "description": "Te mueves más"},
		},
		"items": []any{
			map[string]any{"name": "extra action", "system": map[string]any{"description": map[string]any{"value": "Acción extra"}}},
		},
		"flags": map[string]any{
			"babele": map[string]any{"translated": true},
		},
	}

	out := s.merger.MergeEntity(fighterFeature(), translation)

	s.Equal("Oleada de acción", out["name"])

	system := out["system"].(map[string]any)
	s.Equal(map[string]any{"value": "<p>Supera tus límites.</p>", "chat": ""}, system["description"])
	s.Equal(fighterFeature()["system"].(map[string]any)["uses"], system["uses"], "rules data is never overwritten")
	s.Equal(map[string]any{
		"dnd5eactivity000": map[string]any{"type": "utility", "name": "Oleada", "activation": map[string]any{"type": "special"}},
	}, system["activities"])
	s.Equal([]any{
		map[string]any{
			"_id":           "adv1",
			"type":          "ScaleValue",
			"title":         "Oleadas",
			"configuration": map[string]any{"identifier": "surges"},
			"flags":         map[string]any{"babele": map[string]any{"name": "Oleadas"}},
		},
	}, system["advancement"])

	s.Equal([]any{
		map[string]any{
			"_id":      "eff1",
			"label":    "En oleada",
			"changes":  []any{map[string]any{"key": "system.attributes.movement.walk", "mode": 2, "value": "10"}},
			"duration": map[string]any{"rounds": 1},
			"disabled": false,
			"flags":    map[string]any{"babele": map[string]any{"description": "Te mueves más"}},
		},
	}, out["effects"])

	s.Equal([]any{
		map[string]any{
			"_id":    "sub1",
			"name":   "extra action",
			"type":   "feat",
			"system": map[string]any{"description": map[string]any{"value": "Acción extra"}},
		},
	}, out["items"])

	s.Equal(map[string]any{
		"core":   map[string]any{"sourceId": "Compendium.dnd5e.classfeatures.feat0001"},
		"dnd5e":  map[string]any{"riders": map[string]any{"effect": []any{}}},
		"babele": map[string]any{"translated": true},
	}, out["flags"])
}

func (s *MergerTestSuite) TestMergeEntity_DottedKeys() {
	out := s.merger.MergeEntity(fighterFeature(), entities.Document{
		"system.description.value": "<p>Texto</p>",
		"system.activities": map[string]any{
			"dnd5eactivity000": map[string]any{"name": "Oleada"},
		},
		"system.advancement": map[string]any{
			"byId": map[string]any{"adv1": map[string]any{"title": "Oleadas", "hint": "Usos"}},
		},
	})

	system := out["system"].(map[string]any)
	s.Equal("<p>Texto</p>", system["description"].(map[string]any)["value"])
	s.Equal("Oleada", system["activities"].(map[string]any)["dnd5eactivity000"].(map[string]any)["name"])
	adv := system["advancement"].([]any)[0].(map[string]any)
	s.Equal("Oleadas", adv["title"])
	s.Equal("Usos", adv["hint"])
	s.NotContains(out, "activities", "no top-level activities when the source keeps them under system")
	s.NotContains(out, "advancement")
}

func (s *MergerTestSuite) TestMergeEntity_EmbeddedAliases() {
	source := entities.Document{
		"name":          "Goblin",
		"embeddedItems": []any{map[string]any{"_id": "scim", "name": "Scimitar", "type": "weapon"}},
	}

	out := s.merger.MergeEntity(source, entities.Document{
		"features": map[string]any{"scim": map[string]any{"name": "Cimitarra"}},
	})

	s.Equal([]any{map[string]any{"_id": "scim", "name": "Cimitarra", "type": "weapon"}}, out["items"])
	s.Equal(source["embeddedItems"], out["embeddedItems"])
}

func (s *MergerTestSuite) TestMergeEntity_TopLevelCollectionsWithoutSystem() {
	source := entities.Document{
		"name":        "Legacy",
		"activities":  map[string]any{"a1": map[string]any{"name": "Use"}},
		"advancement": []any{map[string]any{"title": "Hit Points"}},
	}

	out := s.merger.MergeEntity(source, entities.Document{
		"activities":  map[string]any{"a1": map[string]any{"name": "Usar"}},
		"advancement": map[string]any{"Hit Points": map[string]any{"name": "Puntos de golpe"}},
	})

	s.Equal(map[string]any{"a1": map[string]any{"name": "Usar"}}, out["activities"])
	s.Equal("Puntos de golpe", out["advancement"].([]any)[0].(map[string]any)["title"])
	s.NotContains(out, "system")
}

func (s *MergerTestSuite) TestMergeEntity_MalformedFieldsIgnored() {
	out := s.merger.MergeEntity(fighterFeature(), entities.Document{
		"effects":     "not a collection",
		"flags":       "not a mapping",
		"system":      []any{"not a mapping"},
		"activities":  42,
		"advancement": true,
		"name":        "Oleada de acción",
	})

	expected := fighterFeature()
	expected["name"] = "Oleada de acción"
	s.Equal(expected, out)
}

func (s *MergerTestSuite) TestMergeEntity_NilSource() {
	out := s.merger.MergeEntity(nil, entities.Document{"name": "Nuevo"})

	s.Equal(entities.Document{"name": "Nuevo"}, out)
}

func (s *MergerTestSuite) TestMergeEntity_Idempotence() {
	translations := []entities.Document{
		{"name": "Oleada de acción"},
		{"effects": []any{map[string]any{"name": "SURGING", "description": "Moviéndote"}}},
		{"effects": map[string]any{"New Boon": map[string]any{"description": "Una ventaja"}}},
		{"items": map[string]any{"Extra Action": map[string]any{"name": "Acción extra"}, "Fresh": map[string]any{"type": "loot"}}},
		{"system": map[string]any{"advancement": map[string]any{"Surges": map[string]any{"name": "Oleadas", "description": "Cuántas"}}}},
		{"advancement": map[string]any{"byId": map[string]any{"adv1": map[string]any{"title": "Oleadas"}}}},
		{"activities": map[string]any{"dnd5eactivity000": map[string]any{"name": "Oleada"}, "dnd5eactivity001": map[string]any{"name": "Nueva"}}},
		{"flags": map[string]any{"dnd5e": map[string]any{"riders": map[string]any{"label": "Jinetes"}}}},
		{"effects": []any{map[string]any{"label": "Impulso", "name": "Oleada"}}},
		{"effects": []any{map[string]any{"description": "Sin nombre"}, map[string]any{"id": "x", "description": "Otro"}}},
		{"effects": []any{map[string]any{"label": "   ", "icon": "icons/svg/aura.svg"}}},
		{"items": []any{map[string]any{"system": map[string]any{"description": map[string]any{"value": "Sin nombre"}}}}},
		{"items": []any{map[string]any{"id": "x", "type": "loot"}}, "features": []any{map[string]any{"type": "feat"}}},
	}

	for _, translation := range translations {
		once := s.merger.MergeEntity(fighterFeature(), translation)
		twice := s.merger.MergeEntity(once, translation)
		s.Equal(once, twice, "translation %v", translation)
	}
}

func (s *MergerTestSuite) TestMergeEntity_AnonymousEffectSynthesizedOnce() {
	out := s.merger.MergeEntity(fighterFeature(), entities.Document{
		"effects": []any{map[string]any{"description": "Sin nombre"}},
	})

	effects := out["effects"].([]any)
	s.Len(effects, 2)
	s.Equal("Unnamed Effect", effects[1].(map[string]any)["label"])
}

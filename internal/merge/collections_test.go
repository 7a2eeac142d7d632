package merge_test

import (
	"github.com/KirkDiggler/rpg-babele/internal/entities"
)

func (s *MergerTestSuite) TestMergeEffects_CaseInsensitiveMatch() {
	source := []any{
		map[string]any{
			"label":   "Blessed",
			"changes": []any{map[string]any{"key": "system.bonuses.abilities.save", "value": "1d4"}},
		},
	}
	translation := []any{
		map[string]any{"name": "BLESSED", "description": "Bendecido"},
	}

	out := s.merger.MergeEffects(source, translation)

	s.Require().Len(out, 1, "should update the existing effect instead of inserting")
	effect := out[0].(map[string]any)
	s.Equal("BLESSED", effect["label"])
	s.Equal(map[string]any{"babele": map[string]any{"description": "Bendecido"}}, effect["flags"])
	s.Equal(source[0].(map[string]any)["changes"], effect["changes"])
}

func (s *MergerTestSuite) TestMergeEffects_SynthesizesOnMiss() {
	out := s.merger.MergeEffects([]any{}, []any{map[string]any{"name": "Nueva Ventaja"}})

	s.Require().Len(out, 1)
	s.Equal(map[string]any{
		"label":    "Nueva Ventaja",
		"icon":     "icons/svg/mystery-man.svg",
		"changes":  []any{},
		"duration": map[string]any{},
		"disabled": false,
		"flags":    map[string]any{},
	}, out[0])
}

func (s *MergerTestSuite) TestMergeEffects_SynthesizedLabelPrefersLabel() {
	translation := []any{map[string]any{"label": "Impulso", "name": "Oleada"}}

	once := s.merger.MergeEffects(nil, translation)
	s.Require().Len(once, 1)
	s.Equal("Impulso", once[0].(map[string]any)["label"])

	twice := s.merger.MergeEffects(once, translation)
	s.Equal(once, twice)
}

func (s *MergerTestSuite) TestMergeEffects_UnnamedReusesPlaceholders() {
	translation := []any{
		map[string]any{"description": "Primero"},
		map[string]any{"id": "x", "description": "Segundo"},
	}

	once := s.merger.MergeEffects([]any{map[string]any{"label": "Bless"}}, translation)
	s.Require().Len(once, 3)
	for i, want := range []string{"Primero", "Segundo"} {
		effect := once[i+1].(map[string]any)
		s.Equal("Unnamed Effect", effect["label"])
		s.Equal(map[string]any{"babele": map[string]any{"description": want}}, effect["flags"])
	}

	twice := s.merger.MergeEffects(once, translation)
	s.Equal(once, twice)
}

func (s *MergerTestSuite) TestMergeEffects_BlankLabelIsUnnamed() {
	out := s.merger.MergeEffects(nil, []any{map[string]any{"label": "  ", "name": ""}})

	s.Require().Len(out, 1)
	s.Equal("Unnamed Effect", out[0].(map[string]any)["label"])
}

func (s *MergerTestSuite) TestMergeEffects_MappingTranslationUsesKey() {
	source := []any{
		map[string]any{"_id": "eff001", "label": "Bane"},
		map[string]any{"_id": "eff002", "label": "Bane"},
	}
	translation := map[string]any{
		"EFF002": map[string]any{"label": "Perdición"},
	}

	out := s.merger.MergeEffects(source, translation)

	s.Require().Len(out, 2)
	s.Equal("Bane", out[0].(map[string]any)["label"])
	s.Equal("Perdición", out[1].(map[string]any)["label"])
}

func (s *MergerTestSuite) TestMergeEffects_FirstMatchWinsOnCollision() {
	source := []any{
		map[string]any{"_id": "a", "label": "Poisoned"},
		map[string]any{"_id": "b", "label": " poisoned "},
	}

	out := s.merger.MergeEffects(source, []any{map[string]any{"name": "POISONED", "icon": "icons/poison.svg"}})

	s.Require().Len(out, 2)
	s.Equal("icons/poison.svg", out[0].(map[string]any)["icon"])
	s.NotContains(out[1].(map[string]any), "icon", "later duplicate is unreachable by name")
}

func (s *MergerTestSuite) TestMergeEffects_SourceShapes() {
	testCases := []struct {
		name   string
		source any
		want   []any
	}{
		{
			name:   "nil source",
			source: nil,
			want:   []any{},
		},
		{
			name: "id keyed mapping",
			source: map[string]any{
				"zzz": map[string]any{"label": "Last"},
				"aaa": map[string]any{"label": "First", "_id": "aaa"},
			},
			want: []any{
				map[string]any{"label": "First", "_id": "aaa"},
				map[string]any{"label": "Last", "_id": "zzz"},
			},
		},
		{
			name: "positional mapping",
			source: map[string]any{
				"10": map[string]any{"label": "Ten"},
				"2":  map[string]any{"label": "Two"},
			},
			want: []any{
				map[string]any{"label": "Two"},
				map[string]any{"label": "Ten"},
			},
		},
		{
			name:   "scalar source",
			source: "not a collection",
			want:   []any{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, s.merger.MergeEffects(tc.source, nil))
		})
	}
}

func (s *MergerTestSuite) TestMergeEffects_DoesNotMutateInputs() {
	source := []any{map[string]any{"label": "Haste", "flags": map[string]any{"core": map[string]any{"statusId": "haste"}}}}
	translation := []any{map[string]any{"name": "haste", "description": "Prisa"}}

	_ = s.merger.MergeEffects(source, translation)

	s.Equal([]any{map[string]any{"label": "Haste", "flags": map[string]any{"core": map[string]any{"statusId": "haste"}}}}, source)
	s.Equal([]any{map[string]any{"name": "haste", "description": "Prisa"}}, translation)
}

func (s *MergerTestSuite) TestMergeEffects_SkipsMalformedElements() {
	source := []any{map[string]any{"label": "Shield"}, "garbage"}

	out := s.merger.MergeEffects(source, []any{"not a mapping", 7, map[string]any{"name": "shield", "label": "Escudo"}})

	s.Require().Len(out, 2)
	s.Equal("Escudo", out[0].(map[string]any)["label"])
	s.Equal("garbage", out[1])
}

func (s *MergerTestSuite) TestMergeEffects_UpdatesNameWhenPresent() {
	source := []any{map[string]any{"_id": "e1", "name": "Frightened"}}

	out := s.merger.MergeEffects(source, map[string]any{"e1": map[string]any{"name": "Asustado"}})

	effect := out[0].(map[string]any)
	s.Equal("Asustado", effect["name"])
	s.Equal("Asustado", effect["label"])
}

func (s *MergerTestSuite) TestMergeEffects_BatchFindsSynthesized() {
	translation := []any{
		map[string]any{"name": "Marca del Cazador"},
		map[string]any{"name": "marca del cazador", "description": "Marcas a una criatura"},
	}

	out := s.merger.MergeEffects(nil, translation)

	s.Require().Len(out, 1)
	effect := out[0].(map[string]any)
	s.Equal("marca del cazador", effect["label"])
	s.Equal(map[string]any{"babele": map[string]any{"description": "Marcas a una criatura"}}, effect["flags"])
}

func (s *MergerTestSuite) TestMergeEmbedded() {
	source := []any{
		map[string]any{
			"_id":  "itm1",
			"name": "Longsword",
			"type": "weapon",
			"system": map[string]any{
				"description": map[string]any{"value": "<p>A blade.</p>"},
				"damage":      map[string]any{"parts": []any{[]any{"1d8", "slashing"}}},
			},
		},
	}
	translation := map[string]any{
		"longsword": map[string]any{
			"name":   "Espada larga",
			"system": map[string]any{"description": map[string]any{"value": "<p>Una hoja.</p>"}},
		},
		"Healer's Kit": map[string]any{
			"name": "Útiles de sanador",
		},
	}

	out := s.merger.MergeEmbedded(source, translation)

	s.Require().Len(out, 2)
	s.Equal(map[string]any{
		"_id":  "itm1",
		"name": "Espada larga",
		"type": "weapon",
		"system": map[string]any{
			"description": map[string]any{"value": "<p>Una hoja.</p>"},
			"damage":      map[string]any{"parts": []any{[]any{"1d8", "slashing"}}},
		},
	}, out[0])
	s.Equal(map[string]any{
		"name":   "Útiles de sanador",
		"type":   "item",
		"system": map[string]any{},
		"flags":  map[string]any{},
	}, out[1])
}

func (s *MergerTestSuite) TestMergeEmbedded_UnnamedReusesPlaceholder() {
	translation := []any{
		map[string]any{"system": map[string]any{"description": map[string]any{"value": "Sin nombre"}}},
	}

	once := s.merger.MergeEmbedded(nil, translation)
	s.Require().Len(once, 1)
	s.Equal(map[string]any{
		"name":   "Unnamed",
		"type":   "item",
		"system": map[string]any{"description": map[string]any{"value": "Sin nombre"}},
		"flags":  map[string]any{},
	}, once[0])

	twice := s.merger.MergeEmbedded(once, translation)
	s.Equal(once, twice)
}

func (s *MergerTestSuite) TestMergeEmbedded_SynthesizedCarriesDescription() {
	out := s.merger.MergeEmbedded(nil, []any{
		map[string]any{
			"_key":   "Second Wind",
			"type":   "feat",
			"system": map[string]any{"description": map[string]any{"value": "Recuperas aliento"}, "uses": map[string]any{"max": 1}},
		},
	})

	s.Require().Len(out, 1)
	s.Equal(map[string]any{
		"name":   "Second Wind",
		"type":   "feat",
		"system": map[string]any{"description": map[string]any{"value": "Recuperas aliento"}},
		"flags":  map[string]any{},
	}, out[0])
}

func (s *MergerTestSuite) TestMergeActivities() {
	source := map[string]any{
		"dnd5eactivity000": map[string]any{
			"type":   "attack",
			"name":   "Strike",
			"attack": map[string]any{"bonus": "2"},
		},
	}
	translation := map[string]any{
		"dnd5eactivity000": map[string]any{"name": "Golpe", "attack": map[string]any{"bonus": "99"}},
		"dnd5eactivity001": map[string]any{"name": "Curar"},
		"broken":           "scalar",
	}

	out := s.merger.MergeActivities(source, translation)

	s.Equal(map[string]any{
		"dnd5eactivity000": map[string]any{
			"type":   "attack",
			"name":   "Golpe",
			"attack": map[string]any{"bonus": "2"},
		},
		"dnd5eactivity001": map[string]any{"name": "Curar"},
	}, out)
	s.Equal("Strike", source["dnd5eactivity000"].(map[string]any)["name"])
}

func (s *MergerTestSuite) TestMergeActivities_SequenceSource() {
	source := []any{
		map[string]any{"_id": "act1", "name": "Cast"},
		map[string]any{"name": "Anonymous"},
	}

	out := s.merger.MergeActivities(source, map[string]any{"act1": map[string]any{"name": "Lanzar"}})

	s.Equal(map[string]any{
		"act1": map[string]any{"_id": "act1", "name": "Lanzar"},
		"1":    map[string]any{"name": "Anonymous"},
	}, out)
}

func (s *MergerTestSuite) TestMergeActivities_NoTranslation() {
	source := map[string]any{"a": map[string]any{"name": "Use"}}

	out := s.merger.MergeActivities(source, nil)

	s.Equal(source, out)
}

func (s *MergerTestSuite) TestMergeAdvancement_ByTitle() {
	source := []any{
		map[string]any{"_id": "adv1", "type": "HitPoints", "title": "Hit Points", "level": 1},
		map[string]any{"_id": "adv2", "type": "AbilityScoreImprovement", "title": "Ability Score Improvement", "level": 4},
	}
	translation := map[string]any{
		"Ability Score Improvement": map[string]any{
			"name":        "Mejora de característica",
			"description": "Aumenta tus puntuaciones",
		},
		"hit points": map[string]any{"name": "Not exact, ignored"},
	}

	out := s.merger.MergeAdvancement(source, translation)

	s.Require().Len(out, 2)
	s.Equal(source[0], out[0])
	s.Equal(map[string]any{
		"_id":   "adv2",
		"type":  "AbilityScoreImprovement",
		"title": "Mejora de característica",
		"hint":  "Aumenta tus puntuaciones",
		"level": 4,
		"flags": map[string]any{"babele": map[string]any{
			"name":        "Mejora de característica",
			"description": "Aumenta tus puntuaciones",
		}},
	}, out[1])
}

func (s *MergerTestSuite) TestMergeAdvancement_ByID() {
	source := []any{
		map[string]any{"_id": "adv1", "title": "Hit Points", "configuration": map[string]any{"hitDie": "d10"}},
		map[string]any{"_id": "adv2", "title": "Fighting Style"},
	}
	translation := map[string]any{
		"byId": map[string]any{
			"adv2": map[string]any{"title": "Estilo de combate", "hint": "Elige un estilo"},
			"adv9": map[string]any{"title": "Unknown"},
		},
	}

	out := s.merger.MergeAdvancement(source, translation)

	s.Equal([]any{
		map[string]any{"_id": "adv1", "title": "Hit Points", "configuration": map[string]any{"hitDie": "d10"}},
		map[string]any{"_id": "adv2", "title": "Estilo de combate", "hint": "Elige un estilo"},
	}, out)
}

func (s *MergerTestSuite) TestMergeAdvancement_ByIDSourceMapping() {
	source := map[string]any{
		"byId": map[string]any{
			"adv1": map[string]any{"title": "Spellcasting"},
		},
	}

	out := s.merger.MergeAdvancement(source, map[string]any{
		"byId": map[string]any{"adv1": map[string]any{"name": "Lanzamiento de conjuros"}},
	})

	s.Equal([]any{map[string]any{"_id": "adv1", "title": "Lanzamiento de conjuros"}}, out)
}

func (s *MergerTestSuite) TestMergeAdvancement_MalformedTranslation() {
	source := []any{map[string]any{"title": "Hit Points"}}

	s.Equal(source, s.merger.MergeAdvancement(source, []any{"x"}))
	s.Equal(source, s.merger.MergeAdvancement(source, map[string]any{"byId": "x"}))
	s.Equal(source, s.merger.MergeAdvancement(source, map[string]any{"Hit Points": "x"}))
}

func (s *MergerTestSuite) TestMergeFlags_NonDestructive() {
	source := map[string]any{
		"core":  map[string]any{"a": 1},
		"dnd5e": map[string]any{"b": 2},
	}
	translation := map[string]any{
		"dnd5e": map[string]any{"b": 3, "c": 4},
	}

	out := s.merger.MergeFlags(source, translation)

	s.Equal(map[string]any{
		"core":  map[string]any{"a": 1},
		"dnd5e": map[string]any{"b": 3, "c": 4},
	}, out)
	s.Equal(map[string]any{"b": 2}, source["dnd5e"])
}

func (s *MergerTestSuite) TestMergeFlags_EdgeCases() {
	testCases := []struct {
		name        string
		source      any
		translation any
		want        map[string]any
	}{
		{
			name:        "nil source",
			source:      nil,
			translation: map[string]any{"babele": map[string]any{"translated": true}},
			want:        map[string]any{"babele": map[string]any{"translated": true}},
		},
		{
			name:        "scalar translation ignored",
			source:      map[string]any{"core": map[string]any{"a": 1}},
			translation: "oops",
			want:        map[string]any{"core": map[string]any{"a": 1}},
		},
		{
			name:        "nil values skipped",
			source:      map[string]any{"core": map[string]any{"a": 1}},
			translation: map[string]any{"core": map[string]any{"a": nil}},
			want:        map[string]any{"core": map[string]any{"a": 1}},
		},
		{
			name:        "mapping replaces scalar",
			source:      entities.Document{"core": "legacy"},
			translation: map[string]any{"core": map[string]any{"a": 1}},
			want:        map[string]any{"core": map[string]any{"a": 1}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, s.merger.MergeFlags(tc.source, tc.translation))
		})
	}
}

func (s *MergerTestSuite) TestMergePages() {
	pages := []any{
		map[string]any{
			"_id":    "page1",
			"name":   "Rules",
			"type":   "text",
			"text":   map[string]any{"content": "<p>Rules</p>", "format": 1},
			"system": map[string]any{"tooltip": "Rules tooltip"},
		},
		map[string]any{"_id": "page2", "name": "Map", "type": "image", "image": map[string]any{"caption": "A map"}, "src": "maps/a.webp"},
		map[string]any{"_id": "page3", "name": "Untouched"},
	}
	translations := map[string]any{
		"page1": map[string]any{"name": "Reglas", "text": "<p>Reglas</p>", "tooltip": "Ayuda"},
		"Map":   map[string]any{"name": "Mapa", "caption": "Un mapa", "src": "maps/a-es.webp"},
	}

	out := s.merger.MergePages(pages, translations)

	s.Equal([]any{
		map[string]any{
			"_id":    "page1",
			"name":   "Reglas",
			"type":   "text",
			"text":   map[string]any{"content": "<p>Reglas</p>", "format": 1},
			"system": map[string]any{"tooltip": "Ayuda"},
		},
		map[string]any{"_id": "page2", "name": "Mapa", "type": "image", "image": map[string]any{"caption": "Un mapa"}, "src": "maps/a-es.webp"},
		map[string]any{"_id": "page3", "name": "Untouched"},
	}, out)
}

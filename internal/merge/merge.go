// Package merge overlays translated text onto game-content documents.
//
// The engine never translates anything itself: it receives a source document
// and a partial translation of it, and produces a new document in which only
// text-bearing fields have been replaced. Mechanical data (effect changes,
// durations, activity configuration, advancement levels) always survives the
// merge untouched.
//
// Nested collections are matched loosely: effects and embedded items are
// looked up by an explicit _key, by name, or by a secondary identifier, all
// compared case-insensitively. Translation entries that match nothing are
// synthesized into minimal placeholder elements rather than dropped.
//
// Every operation is a pure function of its inputs. A Merger holds only
// immutable configuration and can be shared between goroutines.
package merge

import (
	"github.com/KirkDiggler/rpg-babele/internal/errors"
)

// DefaultNamespace is the flags namespace that receives translated effect
// descriptions and advancement provenance
const DefaultNamespace = "babele"

// Config configures a Merger
type Config struct {
	// Namespace is the flags namespace used for text that has no canonical
	// schema field, e.g. flags.babele.description on an effect
	Namespace string
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Namespace", c.Namespace, vb)
	return vb.Build()
}

// Merger applies translations to documents
type Merger struct {
	namespace string
}

// New creates a Merger from the given configuration
func New(cfg *Config) (*Merger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid merge config")
	}

	return &Merger{namespace: cfg.Namespace}, nil
}

// Default returns a Merger writing into the babele flags namespace
func Default() *Merger {
	return &Merger{namespace: DefaultNamespace}
}

// Namespace returns the flags namespace this merger writes to
func (m *Merger) Namespace() string {
	return m.namespace
}

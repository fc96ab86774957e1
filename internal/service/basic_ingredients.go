package service

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed basic_ingredients.yaml
var defaultBasicIngredientsYAML []byte

type basicIngredientsFile struct {
	Locales map[string][]string `yaml:"locales"`
}

// BasicIngredients is the set of pantry staples excluded from shopping lists.
// Membership is case-insensitive and ignores surrounding whitespace.
type BasicIngredients struct {
	terms map[string]struct{}
}

// NewBasicIngredients builds a set from the given terms.
func NewBasicIngredients(terms ...string) *BasicIngredients {
	b := &BasicIngredients{terms: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		if n := normalizeIngredientName(t); n != "" {
			b.terms[n] = struct{}{}
		}
	}
	return b
}

// DefaultBasicIngredients returns the embedded set for all locales.
func DefaultBasicIngredients() *BasicIngredients {
	b, err := ParseBasicIngredients(defaultBasicIngredientsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded basic ingredients are invalid: %v", err))
	}
	return b
}

// ParseBasicIngredients reads a YAML document with a `locales` map and returns the
// union of the requested locales. No locales means all of them.
func ParseBasicIngredients(data []byte, locales ...string) (*BasicIngredients, error) {
	var file basicIngredientsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse basic ingredients: %w", err)
	}
	if len(file.Locales) == 0 {
		return nil, fmt.Errorf("parse basic ingredients: no locales defined")
	}

	if len(locales) == 0 {
		for locale := range file.Locales {
			locales = append(locales, locale)
		}
	}

	var terms []string
	for _, locale := range locales {
		locale = strings.ToLower(strings.TrimSpace(locale))
		localeTerms, ok := file.Locales[locale]
		if !ok {
			return nil, fmt.Errorf("parse basic ingredients: unknown locale %q", locale)
		}
		terms = append(terms, localeTerms...)
	}
	return NewBasicIngredients(terms...), nil
}

// LoadBasicIngredients loads the set from path, or from the embedded defaults when
// path is empty.
func LoadBasicIngredients(path string, locales []string) (*BasicIngredients, error) {
	data := defaultBasicIngredientsYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read basic ingredients file: %w", err)
		}
	}
	return ParseBasicIngredients(data, locales...)
}

// Contains reports whether name is a basic ingredient.
func (b *BasicIngredients) Contains(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.terms[normalizeIngredientName(name)]
	return ok
}

// Len returns the number of terms in the set.
func (b *BasicIngredients) Len() int {
	if b == nil {
		return 0
	}
	return len(b.terms)
}

// Terms returns the normalised terms in alphabetical order.
func (b *BasicIngredients) Terms() []string {
	if b == nil {
		return nil
	}
	terms := make([]string, 0, len(b.terms))
	for t := range b.terms {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

func normalizeIngredientName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

package config

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Catalog is the immutable run configuration: which models, fonts, and
// template styles the pipeline offers. It is constructed once and passed
// into the command surfaces; nothing mutates it afterwards.
type Catalog struct {
	// Models maps display names to Watsonx model IDs.
	Models map[string]string
	// Fonts maps display names to core PDF font families.
	Fonts map[string]string
	// Templates maps display names to style identifiers.
	Templates map[string]string
}

// DefaultCatalog returns the built-in catalog. A fresh value every call,
// so callers cannot mutate shared state.
func DefaultCatalog() (catalog Catalog) {
	catalog = Catalog{
		Models: map[string]string{
			"Mistral Large":              "mistralai/mistral-large",
			"Meta Llama 3 405B Instruct": "meta-llama/llama-3-405b-instruct",
			"IBM Granite 13B Instruct":   "ibm/granite-13b-instruct-v2",
			"IBM Granite 20B Instruct":   "ibm/granite-20b-instruct-v1",
		},
		Fonts: map[string]string{
			"Arial":           "Arial",
			"Times New Roman": "Times",
			"Helvetica":       "Helvetica",
			"Calibri":         "Arial", // no core Calibri; Arial is the closest match
		},
		Templates: map[string]string{
			"Professional": "professional",
			"Creative":     "creative",
			"Technical":    "technical",
			"Academic":     "academic",
		},
	}
	return catalog
}

// ModelID resolves a model display name, accepting a raw model ID too.
func (c Catalog) ModelID(name string) (id string, err error) {
	if resolved, ok := c.Models[name]; ok {
		id = resolved
		return id, err
	}

	for _, known := range c.Models {
		if known == name {
			id = name
			return id, err
		}
	}

	err = errors.Errorf("unknown model: %q (available: %s)", name, strings.Join(c.ModelNames(), ", "))
	return id, err
}

// FontFamily resolves a font display name to a PDF font family, accepting
// a raw family name too.
func (c Catalog) FontFamily(name string) (family string, err error) {
	if resolved, ok := c.Fonts[name]; ok {
		family = resolved
		return family, err
	}

	for _, known := range c.Fonts {
		if known == name {
			family = name
			return family, err
		}
	}

	err = errors.Errorf("unknown font: %q (available: %s)", name, strings.Join(c.FontNames(), ", "))
	return family, err
}

// ModelNames returns the model display names, sorted.
func (c Catalog) ModelNames() (names []string) {
	for name := range c.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FontNames returns the font display names, sorted.
func (c Catalog) FontNames() (names []string) {
	for name := range c.Fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

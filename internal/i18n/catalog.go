package i18n

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

var templatePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Catalog holds dotted-key UI strings per language.
type Catalog struct {
	strings map[Language]map[string]string
}

// DefaultCatalog loads the translations shipped with the binary.
func DefaultCatalog() (*Catalog, error) {
	c := &Catalog{strings: make(map[Language]map[string]string)}
	for _, lang := range Supported {
		f, err := embedded.Open("data/" + string(lang) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("open embedded %s translations: %w", lang, err)
		}
		err = c.load(lang, f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadCatalogDir reads <dir>/<lang>.yaml for every supported language.
// English is required, other languages are optional.
func LoadCatalogDir(dir string) (*Catalog, error) {
	c := &Catalog{strings: make(map[Language]map[string]string)}
	for _, lang := range Supported {
		f, err := os.Open(filepath.Join(dir, string(lang)+".yaml"))
		if err != nil {
			if os.IsNotExist(err) && lang != English {
				continue
			}
			return nil, fmt.Errorf("open %s translations: %w", lang, err)
		}
		err = c.load(lang, f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) load(lang Language, r io.Reader) error {
	var tree map[string]any
	if err := yaml.NewDecoder(r).Decode(&tree); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, lang, err)
	}
	flat := make(map[string]string)
	flatten("", tree, flat)
	c.strings[lang] = flat
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Lookup resolves a dotted key for lang, falling back to English.
func (c *Catalog) Lookup(lang Language, key string) (string, bool) {
	if v, ok := c.strings[lang][key]; ok {
		return v, true
	}
	v, ok := c.strings[English][key]
	return v, ok
}

// T resolves key for lang and fills {{name}} placeholders from vars.
// A missing key is returned unchanged.
func (c *Catalog) T(lang Language, key string, vars map[string]string) string {
	v, ok := c.Lookup(lang, key)
	if !ok {
		return key
	}
	return FormatTemplate(v, vars)
}

// FormatTemplate replaces {{name}} placeholders; unknown names are left as is.
func FormatTemplate(template string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(template, "{{") {
		return template
	}
	return templatePattern.ReplaceAllStringFunc(template, func(m string) string {
		name := templatePattern.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok && v != "" {
			return v
		}
		return m
	})
}

// Missing lists the English keys that lang does not translate, sorted.
func (c *Catalog) Missing(lang Language) []string {
	var out []string
	for key := range c.strings[English] {
		if _, ok := c.strings[lang][key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

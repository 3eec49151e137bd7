package procedure

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dbt-guide/internal/i18n"
)

//go:embed data/procedures.yaml
var defaultProcedures []byte

// Catalog is the validated, immutable set of cases.
type Catalog struct {
	cases    []Case
	index    map[string]int
	registry *Registry
}

type document struct {
	Cases []Case `yaml:"cases"`
}

// DefaultCases returns the cases shipped with the binary.
func DefaultCases() ([]Case, error) {
	return LoadCases(bytes.NewReader(defaultProcedures))
}

// LoadCasesFile reads cases from a YAML file.
func LoadCasesFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open procedures: %w", err)
	}
	defer f.Close()
	return LoadCases(f)
}

// LoadCases decodes a procedures document. Unknown fields are rejected.
func LoadCases(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCase, err)
	}
	return doc.Cases, nil
}

// NewCatalog validates cases against the registry. Every step action needs a
// registered strategy and enough checklist items for it to mark.
func NewCatalog(cases []Case, registry *Registry) (*Catalog, error) {
	if len(cases) == 0 {
		return nil, ErrNoCases
	}

	c := &Catalog{
		cases:    make([]Case, 0, len(cases)),
		index:    make(map[string]int, len(cases)),
		registry: registry,
	}
	for _, pc := range cases {
		if err := c.validateCase(pc); err != nil {
			return nil, err
		}
		c.index[pc.ID] = len(c.cases)
		c.cases = append(c.cases, pc)
	}
	return c, nil
}

func (c *Catalog) validateCase(pc Case) error {
	if pc.ID == "" {
		return fmt.Errorf("%w: case without id", ErrInvalidCase)
	}
	if _, dup := c.index[pc.ID]; dup {
		return fmt.Errorf("%w: duplicate case %q", ErrInvalidCase, pc.ID)
	}
	if err := validText(pc.Title); err != nil {
		return fmt.Errorf("%w: %s title: %v", ErrInvalidCase, pc.ID, err)
	}
	if len(pc.Steps) == 0 {
		return fmt.Errorf("%w: %s has no steps", ErrInvalidCase, pc.ID)
	}

	for i, st := range pc.Steps {
		where := fmt.Sprintf("%s step %d", pc.ID, i+1)
		if err := validText(st.Title); err != nil {
			return fmt.Errorf("%w: %s title: %v", ErrInvalidCase, where, err)
		}
		if err := validText(st.Content); err != nil {
			return fmt.Errorf("%w: %s content: %v", ErrInvalidCase, where, err)
		}
		for j, item := range st.Checklist {
			if err := validText(item); err != nil {
				return fmt.Errorf("%w: %s item %d: %v", ErrInvalidCase, where, j, err)
			}
		}

		s, err := c.registry.Strategy(st.Action)
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if len(st.Checklist) < s.Items {
			return fmt.Errorf("%w: %s: action %q needs %d checklist items, has %d",
				ErrInvalidCase, where, st.Action, s.Items, len(st.Checklist))
		}
	}
	return nil
}

func validText(s i18n.LocalizedString) error {
	if !s.Valid() {
		return fmt.Errorf("english text is required")
	}
	for lang := range s {
		if _, err := i18n.Parse(string(lang)); err != nil {
			return fmt.Errorf("%q: %w", lang, err)
		}
	}
	return nil
}

// Case returns the case with id.
func (c *Catalog) Case(id string) (Case, error) {
	i, ok := c.index[id]
	if !ok {
		return Case{}, fmt.Errorf("%w: %q", ErrCaseNotFound, id)
	}
	return c.cases[i], nil
}

// Default is the first case of the catalog.
func (c *Catalog) Default() Case {
	return c.cases[0]
}

// Strategy returns the strategy of a step action.
func (c *Catalog) Strategy(tag ActionTag) (Strategy, error) {
	return c.registry.Strategy(tag)
}

// Summaries lists the cases in catalog order, localized to lang.
func (c *Catalog) Summaries(lang i18n.Language) []CaseSummary {
	out := make([]CaseSummary, len(c.cases))
	for i, pc := range c.cases {
		out[i] = CaseSummary{ID: pc.ID, Title: pc.Title.Get(lang), Steps: len(pc.Steps)}
	}
	return out
}

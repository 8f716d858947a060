package document

import (
	"github.com/flanksource/docsmith/registry"
	"github.com/samber/lo"
)

// Input describes one rendered form control for the active template.
type Input struct {
	Name        string
	Label       string
	Placeholder string
	Kind        registry.FieldKind
	Required    bool
	Value       string
	// Suggestible is true when a canned example exists for this field, which
	// surfaces the suggestion affordance next to the input.
	Suggestible bool
}

// Form returns the inputs for the session's template, in template field
// order. Fields missing from the catalog are skipped entirely rather than
// rendered bare.
func (s *Session) Form() []Input {
	required := lo.SliceToMap(requiredFields[s.DocType], func(f string) (string, bool) {
		return f, true
	})

	inputs := make([]Input, 0, len(s.Template.Fields))
	for _, name := range s.Template.Fields {
		cfg, ok := registry.Field(name)
		if !ok {
			continue
		}
		inputs = append(inputs, Input{
			Name:        name,
			Label:       cfg.Label,
			Placeholder: cfg.Placeholder,
			Kind:        cfg.Kind,
			Required:    required[name],
			Value:       s.Fields[name],
			Suggestible: len(registry.Suggestions(s.DocType, name)) > 0,
		})
	}
	return inputs
}

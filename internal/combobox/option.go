package combobox

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/combobox/internal/logger"
)

// Option is a selectable item. Options are owned by the caller and must not be
// mutated while the engine is filtering or rendering them.
type Option struct {
	Label    string `yaml:"label"`
	Value    string `yaml:"value" validate:"required"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Group    string `yaml:"group,omitempty"`
	Data     any    `yaml:"data,omitempty"`
}

// Grouped reports whether the option belongs to a named group.
func (o Option) Grouped() bool {
	return o.Group != ""
}

// sameEntry reports whether two options describe the same list entry.
// Data is ignored since it may hold values that are not comparable.
func (o Option) sameEntry(other Option) bool {
	return o.Value == other.Value && o.Label == other.Label && o.Group == other.Group && o.Disabled == other.Disabled
}

var (
	optionValidatorOnce sync.Once
	optionValidator     *validator.Validate
)

func optionValidatorInstance() *validator.Validate {
	optionValidatorOnce.Do(func() {
		optionValidator = validator.New()
	})
	return optionValidator
}

// InvalidOptions returns the indices of options that fail boundary
// validation, such as an option without a value.
func InvalidOptions(options []Option) []int {
	v := optionValidatorInstance()

	var bad []int
	for i := range options {
		if v.Struct(options[i]) != nil {
			bad = append(bad, i)
		}
	}
	return bad
}

// SanitizeOptions drops options that fail boundary validation and logs a
// warning for each one. The input slice is returned unchanged when every
// option is valid.
func SanitizeOptions(options []Option, log *logger.Logger) []Option {
	bad := InvalidOptions(options)
	if len(bad) == 0 {
		return options
	}

	kept := make([]Option, 0, len(options)-len(bad))
	next := 0
	for i, opt := range options {
		if next < len(bad) && bad[next] == i {
			next++
			log.WithFields(map[string]any{
				"index": i,
				"label": opt.Label,
			}).Warn("dropping option without a value")
			continue
		}
		kept = append(kept, opt)
	}
	return kept
}

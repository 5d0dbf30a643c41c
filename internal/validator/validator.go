package validator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind is the expected type of a field value.
type Kind int

const (
	String Kind = iota
	Number
	Boolean
)

// Rule describes the constraints on a single field.
type Rule struct {
	Required bool
	Kind     Kind
	MaxLen   int // maximum length in characters, 0 means unlimited
}

// RuleSet maps field names to their rules.
type RuleSet map[string]Rule

// Errors collects every violation found in a payload, keyed by field path.
// It implements error so it can travel through ordinary return values.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed on: " + strings.Join(fields, ", ")
}

// Add appends a violation message for a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Merge folds the violations of other into e.
func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		e[field] = append(e[field], messages...)
	}
}

// Validate checks the raw string values of a payload against the rule set.
// All rules are evaluated and every violation is collected before reporting,
// so callers can show the user the complete error set in one pass.
//
// On success the returned map holds the coerced value for each field that was
// present: string for String fields, float64 for Number, bool for Boolean.
// Coercion is explicit: numeric and boolean fields arrive as multipart form
// strings and must parse, otherwise the field is reported as a violation.
func (rs RuleSet) Validate(values map[string]string) (map[string]any, Errors) {
	coerced := make(map[string]any, len(rs))
	errs := Errors{}

	for field, rule := range rs {
		value, present := values[field]

		if !present || value == "" {
			if rule.Required {
				errs.Add(field, fmt.Sprintf("%s is a required field", field))
			}
			continue
		}

		switch rule.Kind {
		case String:
			if rule.MaxLen > 0 && utf8.RuneCountInString(value) > rule.MaxLen {
				errs.Add(field, fmt.Sprintf("%s must be at most %d characters", field, rule.MaxLen))
				continue
			}
			coerced[field] = value
		case Number:
			number, err := strconv.ParseFloat(value, 64)
			if err != nil {
				errs.Add(field, fmt.Sprintf("%s must be a number", field))
				continue
			}
			coerced[field] = number
		case Boolean:
			boolean, err := strconv.ParseBool(value)
			if err != nil {
				errs.Add(field, fmt.Sprintf("%s must be a boolean", field))
				continue
			}
			coerced[field] = boolean
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return coerced, nil
}

// ValidateImagePaths checks that every image descriptor carries a non-empty
// path, reporting violations keyed by element position.
func ValidateImagePaths(paths []string) Errors {
	errs := Errors{}
	for i, path := range paths {
		if path == "" {
			errs.Add(fmt.Sprintf("images[%d].path", i), "path is a required field")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

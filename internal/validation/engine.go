package validation

import (
	"fmt"

	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/values"
)

// Result is the outcome of one validator call
type Result struct {
	IsValid   bool   `json:"isValid"`
	Message   string `json:"message,omitempty"`
	IsWarning bool   `json:"isWarning,omitempty"`
}

// Func validates a single non-empty field value
type Func func(value any) Result

// Rule binds a validator to a field
type Rule struct {
	Field     string
	Required  bool
	Validator Func
}

// ValidationResult partitions failures into blocking errors and warnings
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Engine evaluates an ordered, append-only list of rules
type Engine struct {
	rules []Rule
}

// New creates an engine holding rules in the given order
func New(rules ...Rule) *Engine {
	return &Engine{rules: append([]Rule(nil), rules...)}
}

// AddRule appends rule and returns the engine for chaining
func (e *Engine) AddRule(rule Rule) *Engine {
	e.rules = append(e.rules, rule)
	return e
}

// Rules returns a copy of the rule list
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Validate runs every rule against data in insertion order. Empty values
// (null or "") fail required rules without reaching the validator and are
// skipped by optional ones. Warnings never affect IsValid.
func (e *Engine) Validate(data records.Fielder) ValidationResult {
	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	for _, rule := range e.rules {
		var value any
		if data != nil {
			value = data.Field(rule.Field)
		}

		if values.IsEmpty(value) {
			if rule.Required {
				result.Errors = append(result.Errors, fmt.Sprintf("%s is required", rule.Field))
			}
			continue
		}

		if rule.Validator == nil {
			continue
		}

		res := rule.Validator(value)
		if res.IsValid {
			continue
		}

		msg := res.Message
		if msg == "" {
			msg = fmt.Sprintf("Invalid %s", rule.Field)
		}
		if res.IsWarning {
			result.Warnings = append(result.Warnings, msg)
		} else {
			result.Errors = append(result.Errors, msg)
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/valuecheck/pkg/datenorm"
	"github.com/dmitrymomot/valuecheck/pkg/rulespec"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	dates    *datenorm.Normalizer
	messages Messages
	custom   []customRule
}

type customRule struct {
	name     string
	fn       Predicate
	template string
}

// WithDateNormalizer sets the normalizer used by isDate and the date comparison rules.
func WithDateNormalizer(n *datenorm.Normalizer) Option {
	return func(o *options) {
		if n != nil {
			o.dates = n
		}
	}
}

// WithMessages overrides templates of registered rules.
// Overriding a rule that does not exist makes New fail with ErrUnknownRule.
func WithMessages(m Messages) Option {
	return func(o *options) {
		if o.messages == nil {
			o.messages = make(Messages, len(m))
		}
		maps.Copy(o.messages, m)
	}
}

// WithRule registers an additional rule, or replaces a built-in one.
func WithRule(name string, fn Predicate, template string) Option {
	return func(o *options) {
		o.custom = append(o.custom, customRule{name: name, fn: fn, template: template})
	}
}

// RuleInfo describes a registered rule.
type RuleInfo struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Validator evaluates rule specifiers against values.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	rules    registry
	messages Messages
}

// New builds a Validator from the built-in rules and the given options.
func New(opts ...Option) (*Validator, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.dates == nil {
		o.dates = datenorm.New()
	}

	rules := builtinRules(o.dates)
	messages := DefaultMessages()

	for _, c := range o.custom {
		switch {
		case c.name == "" || c.name == RequiredRule:
			return nil, &RuleError{Rule: c.name, Name: c.name, Err: ErrInvalidRule}
		case c.fn == nil:
			return nil, &RuleError{Rule: c.name, Name: c.name, Err: errors.Join(ErrInvalidRule, errors.New("nil predicate"))}
		case c.template == "":
			return nil, &RuleError{Rule: c.name, Name: c.name, Err: errors.Join(ErrInvalidRule, errors.New("empty message template"))}
		}
		rules[c.name] = c.fn
		messages[c.name] = c.template
	}

	for name, tmpl := range o.messages {
		if _, ok := messages[name]; !ok {
			return nil, &RuleError{Rule: name, Name: name, Err: ErrUnknownRule}
		}
		messages[name] = tmpl
	}

	return &Validator{rules: rules, messages: messages}, nil
}

// MustNew works like New but panics on misconfiguration.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return v
}

// Validate evaluates every specifier against data and returns the failures in
// input order. The returned slice is never nil. A non-nil error means the
// rule list itself is wrong; no failures are returned in that case.
func (v *Validator) Validate(specs []string, data any) (ValidationErrors, error) {
	result := ValidationErrors{}
	if len(specs) == 0 {
		return result, nil
	}

	rules, required, err := v.resolve(specs)
	if err != nil {
		return result, err
	}

	value := strings.TrimSpace(stringify(data))
	if value == "" {
		if required {
			result.Add(ValidationError{
				Rule:    RequiredRule,
				Message: v.messages.Format(RequiredRule, nil),
			})
		}
		return result, nil
	}

	for _, r := range rules {
		if r.Name == RequiredRule {
			continue
		}
		fn, _ := v.rules.lookup(r.Name)
		if fn(value, r.Params) {
			continue
		}
		result.Add(ValidationError{
			Rule:    r.Raw,
			Message: v.messages.Format(r.Name, r.Params),
		})
	}

	return result, nil
}

// Check is Validate for error-returning call sites: it returns nil when the
// value passes, ValidationErrors when rules fail, and a *RuleError when the
// rule list is misconfigured.
func (v *Validator) Check(specs []string, data any) error {
	errs, err := v.Validate(specs, data)
	if err != nil {
		return err
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Has reports whether a rule name is registered ("required" included).
func (v *Validator) Has(name string) bool {
	if name == RequiredRule {
		return true
	}
	_, ok := v.rules.lookup(name)
	return ok
}

// Rules lists every usable rule with its message template, sorted by name.
func (v *Validator) Rules() []RuleInfo {
	names := append(v.rules.names(), RequiredRule)
	infos := make([]RuleInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, RuleInfo{Name: name, Message: v.messages[name]})
	}
	slices.SortFunc(infos, func(a, b RuleInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos
}

// resolve parses every specifier and checks it against the registry and the
// catalog before anything is evaluated.
func (v *Validator) resolve(specs []string) ([]rulespec.Rule, bool, error) {
	rules := rulespec.ParseAll(specs)
	required := false

	for _, r := range rules {
		if r.Name == RequiredRule {
			if r.HasParams() {
				return nil, false, &RuleError{Rule: r.Raw, Name: r.Name, Err: ErrInvalidRule}
			}
			required = true
			continue
		}
		if _, ok := v.rules.lookup(r.Name); !ok {
			return nil, false, &RuleError{Rule: r.Raw, Name: r.Name, Err: ErrUnknownRule}
		}
		if _, ok := v.messages.Template(r.Name); !ok {
			return nil, false, &RuleError{Rule: r.Raw, Name: r.Name, Err: ErrUnknownRule}
		}
	}

	return rules, required, nil
}

// stringify mirrors how callers print values: nil is empty, everything else
// uses its natural string form.
func stringify(data any) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

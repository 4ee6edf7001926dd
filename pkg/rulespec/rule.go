package rulespec

import "strings"

// Rule is a parsed rule specifier.
type Rule struct {
	// Raw is the specifier exactly as supplied by the caller.
	Raw string
	// Name is the rule name used for registry lookup.
	Name string
	// Params are the trimmed parameters in declaration order.
	Params []string
}

// Parse splits a specifier into its name and parameters.
// A specifier without a complete "(...)" group is treated as a bare name.
func Parse(spec string) Rule {
	open := strings.IndexByte(spec, '(')
	if open < 0 {
		return Rule{Raw: spec, Name: strings.TrimSpace(spec)}
	}

	closing := strings.IndexByte(spec[open+1:], ')')
	if closing < 0 {
		return Rule{Raw: spec, Name: strings.TrimSpace(spec)}
	}

	return Rule{
		Raw:    spec,
		Name:   strings.TrimSpace(spec[:open]),
		Params: splitParams(spec[open+1 : open+1+closing]),
	}
}

// ParseAll parses every specifier, preserving order.
func ParseAll(specs []string) []Rule {
	rules := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		rules = append(rules, Parse(spec))
	}
	return rules
}

// Param returns the i-th parameter (zero-based).
func (r Rule) Param(i int) (string, bool) {
	if i < 0 || i >= len(r.Params) {
		return "", false
	}
	return r.Params[i], true
}

func (r Rule) HasParams() bool {
	return len(r.Params) > 0
}

// String returns the original specifier.
func (r Rule) String() string {
	return r.Raw
}

// splitParams returns nil for a blank group so "rule()" behaves like "rule".
func splitParams(group string) []string {
	if strings.TrimSpace(group) == "" {
		return nil
	}

	parts := strings.Split(group, ",")
	params := make([]string, 0, len(parts))
	for _, p := range parts {
		params = append(params, strings.TrimSpace(p))
	}
	return params
}

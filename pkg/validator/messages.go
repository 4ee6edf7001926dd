package validator

import (
	"errors"
	"io"
	"maps"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultMessages holds one template per rule. %1, %2, ... are replaced by
// the rule parameters in order.
var defaultMessages = Messages{
	RequiredRule:             "This is a required value",
	"greaterThan":            "Must be a number greater than %1",
	"greaterThanDate":        "Must contain a date after %1",
	"greaterThanOrEqualDate": "Must contain a date on or after %1",
	"isAlpha":                "Must contain only alphabetical characters",
	"isAlphaCountryCode":     "Must be a valid country",
	"isAlphaDash":            "Must only contain alpha-numeric characters, underscores, and dashes",
	"isAlphaNumeric":         "Must only contain alpha-numeric characters",
	"isBase64":               "Must contain a base64 string",
	"isCreditCard":           "Must contain a valid credit card number",
	"isDate":                 "Must be a valid date",
	"isDecimal":              "Must contain a decimal number",
	"isEmail":                "Invalid email address",
	"isEmailList":            "Invalid email address found in email address list",
	"isFileType":             "Must contain only %1 files",
	"isInteger":              "Invalid integer",
	"isIpAddress":            "Must contain a valid IP address",
	"isLength":               "Must have a length of exactly %1",
	"isNaturalNumber":        "Must contain a positive whole number or zero",
	"isNaturalNumberNoZero":  "Must contain a positive whole number",
	"isNumeric":              "Must contain numeric characters only",
	"isNumericCountryCode":   "Must be a valid country",
	"isNumericDash":          "Must contain only numeric characters or dash",
	"isPhoneCharacters":      "Must contain a valid phone number",
	"isUrl":                  "Must contain a valid URL",
	"lessThan":               "Must be a number less than %1",
	"lessThanDate":           "Must contain a date before %1",
	"lessThanOrEqualDate":    "Must contain a date on or before %1",
	"maxLength":              "Must have a maximum length of at most %1",
	"minLength":              "Must have a minimum length of at least %1",
}

// Messages maps rule names to message templates.
type Messages map[string]string

// DefaultMessages returns a copy of the built-in catalog.
func DefaultMessages() Messages {
	return maps.Clone(defaultMessages)
}

// Template returns the raw template for a rule.
func (m Messages) Template(name string) (string, bool) {
	tmpl, ok := m[name]
	return tmpl, ok
}

// Format fills the rule's template with params. Placeholders are replaced
// from the highest index down so %1 never clobbers the prefix of %10.
// A placeholder with no matching parameter is left as is.
func (m Messages) Format(name string, params []string) string {
	msg := m[name]
	for i := len(params); i >= 1; i-- {
		msg = strings.Replace(msg, "%"+strconv.Itoa(i), params[i-1], 1)
	}
	return msg
}

// LoadMessages decodes a YAML mapping of rule name to template, e.g.
//
//	isEmail: "Please enter a valid email"
//	minLength: "Use at least %1 characters"
func LoadMessages(r io.Reader) (Messages, error) {
	var m Messages
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Messages{}, nil
		}
		return nil, errors.Join(ErrInvalidMessages, err)
	}
	if m == nil {
		m = Messages{}
	}
	return m, nil
}

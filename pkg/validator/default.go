package validator

var defaultValidator = MustNew()

// Default returns the shared validator with the built-in rules and messages.
func Default() *Validator {
	return defaultValidator
}

// Validate runs specs against data using the default validator.
func Validate(specs []string, data any) (ValidationErrors, error) {
	return defaultValidator.Validate(specs, data)
}

// Check runs specs against data using the default validator.
func Check(specs []string, data any) error {
	return defaultValidator.Check(specs, data)
}

// Rules lists the rules of the default validator.
func Rules() []RuleInfo {
	return defaultValidator.Rules()
}

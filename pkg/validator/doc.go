// Package validator evaluates a value against an ordered list of textual rule
// specifiers and reports every rule that fails.
//
// A specifier is a rule name, optionally followed by parameters:
//
//	errs, err := validator.Validate([]string{"required", "minLength(5)", "isEmail"}, input)
//	if err != nil {
//	    // configuration error: a specifier names an unknown rule
//	}
//	for _, e := range errs {
//	    fmt.Println(e.Rule, e.Message)
//	}
//
// # Architecture
//
// The package is built from three immutable tables and one entry point:
//
//   - Registry: rule name to Predicate. Rules are grouped by family in
//     string_rules.go, numeric_rules.go, format_rules.go and date_rules.go.
//   - Message catalog: rule name to a template with positional %1, %2, ...
//     placeholders filled from the rule parameters.
//   - Date handling: date rules compare values through a datenorm.Normalizer,
//     so "today", MM/DD/YYYY and free-form dates compare at day granularity.
//   - Validator: parses specifiers with the rulespec package, resolves them,
//     runs the predicates and collects ValidationErrors in input order.
//
// The reserved "required" rule short-circuits: an empty (after trimming) value
// with "required" yields a single failure and nothing else is evaluated. An
// empty value without "required" is always valid.
//
// # Error Handling
//
// Failing rules are data, not errors: they are returned as ValidationErrors.
// A specifier naming a rule that is not registered is a programming error and
// is returned as a *RuleError wrapping ErrUnknownRule (or ErrInvalidRule for
// a parameterized "required"). Malformed parameters, such as a non-numeric
// length bound or an unparseable date, simply make the rule fail.
//
// ValidationErrors implements error, so Check can be used where an error
// return is more convenient; ExtractValidationErrors recovers the details.
//
// # Concurrency
//
// A Validator never changes after New and can be shared by any number of
// goroutines. The package-level functions use a default Validator built once.
package validator

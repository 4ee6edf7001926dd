// Package rulespec parses textual rule specifiers into a rule name and an
// ordered list of parameters.
//
// A specifier is either a bare name or a name followed by a single
// parenthesized, comma-separated parameter list:
//
//	isEmail
//	minLength(5)
//	isFileType(jpg; png)
//
// Parsing is purely syntactic. The package does not know which rule names
// exist; resolving a name to a predicate is the caller's job.
//
// # Usage
//
//	rule := rulespec.Parse("minLength(5)")
//	rule.Name   // "minLength"
//	rule.Params // []string{"5"}
//
// Only the first parenthesized group is considered. Anything after its closing
// parenthesis is ignored.
package rulespec

// Package validator provides small, composable validation rules for form input.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Rules are evaluated either with Apply, which aggregates every
// failure into a ValidationErrors slice, or with ApplyFirst, which stops at the
// first failing rule and reports only that one. ApplyFirst is what ordered form
// checks use: the position of a rule in the argument list is its priority.
//
// # Usage
//
//	err := validator.ApplyFirst(
//	    validator.NotEmptyString("targetname", in.Name).WithMessage("Please enter target name"),
//	    validator.PositiveNumericString("targetmetric", in.Metric),
//	)
//	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
//	    fmt.Println(errs[0].Message)
//	}
//
// # Numeric strings
//
// IsNumericString is a character-class check: it accepts strings made only of
// ASCII digits and dots, including the empty string. ParseLeadingFloat reads
// the longest leading "digits[.digits]" prefix. PositiveNumericString combines
// the two and never parses a string the classifier rejects.
//
// All helpers are stateless and safe for concurrent use.
package validator

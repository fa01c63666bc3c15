// Package sanitizer provides composable clean-up helpers for user-supplied
// string collections.
//
// Functions are pure: they return new slices and never mutate their input.
// Apply chains transforms left to right:
//
//	tags := sanitizer.Apply(sanitizer.SplitList(raw),
//	    sanitizer.ToLowerStringSlice,
//	    sanitizer.CleanStringSlice,
//	)
//
// Tags wraps exactly that pipeline for target tag fields.
package sanitizer

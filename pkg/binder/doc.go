// Package binder binds HTTP request data to Go structs.
//
// Two binders are provided:
//
//   - Form(): application/x-www-form-urlencoded and multipart/form-data bodies, `form:` tags
//   - Query(): URL query parameters, `query:` tags
//
// Supported field types are string, signed and unsigned integers, floats, bool,
// slices of those (repeated keys or comma-separated values) and pointers for
// optional fields. Parameters missing from the request leave the field at its
// zero value; binders never invent defaults.
//
// # Usage
//
//	type Input struct {
//	    Name  string `form:"targetname"`
//	    Owner string `form:"targetowner"`
//	}
//
//	var in Input
//	if err := binder.Form()(r, &in); err != nil {
//	    // errors.Is(err, binder.ErrUnsupportedMediaType), ...
//	}
//
// # Errors
//
//   - ErrUnsupportedMediaType: Content-Type is not a form type
//   - ErrMissingContentType: Content-Type header is absent
//   - ErrFailedToParseForm / ErrFailedToParseQuery: malformed body or unconvertible value
//   - ErrBinderNotApplicable: the request method carries no form body
package binder

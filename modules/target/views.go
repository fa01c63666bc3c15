package target

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/targetform/handler"
)

// FormPageParams is the data of the target definition form page.
type FormPageParams struct {
	Action  string
	Input   Input
	Message string
}

// Views renders the HTML pages of the service.
type Views struct {
	FormPage  func(FormPageParams) templ.Component
	ErrorPage func(handler.ErrorPageParams) templ.Component
}

// DefaultViews returns minimal built-in pages.
func DefaultViews() *Views {
	return &Views{
		FormPage:  formPage,
		ErrorPage: errorPage,
	}
}

type formField struct {
	key, label, value string
}

func formPage(p FormPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fields := []formField{
			{FieldName, "Target name", p.Input.Name},
			{FieldOwner, "Owner", p.Input.Owner},
			{FieldMetric, "Target metric", p.Input.Metric},
			{FieldMetricUnit, "Metric unit", p.Input.MetricUnit},
			{FieldTags, "Tags", p.Input.Tags},
			{FieldColorRed, "Red (%)", p.Input.ColorRed},
			{FieldColorOrange, "Orange (%)", p.Input.ColorOrange},
			{FieldColorYellow, "Yellow (%)", p.Input.ColorYellow},
		}

		ew := &errWriter{w: w}
		ew.printf("<!DOCTYPE html><html><head><title>New target</title></head><body>")
		ew.printf("<h1>New target</h1>")
		if p.Message != "" {
			ew.printf(`<p class="error" role="alert">%s</p>`, templ.EscapeString(p.Message))
		}
		ew.printf(`<form name="targetform" method="post" action="%s">`, templ.EscapeString(p.Action))
		for _, f := range fields {
			ew.printf(`<label for="%[1]s">%[2]s</label><input type="text" id="%[1]s" name="%[1]s" value="%[3]s">`,
				f.key, templ.EscapeString(f.label), templ.EscapeString(f.value))
		}
		ew.printf(`<button type="submit">Save</button></form></body></html>`)
		return ew.err
	})
}

func errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf("<!DOCTYPE html><html><head><title>Error</title></head><body>")
		ew.printf("<h1>%d %s</h1>", p.StatusCode, templ.EscapeString(p.Error))
		if p.RequestID != "" {
			ew.printf("<p>Request ID: %s</p>", templ.EscapeString(p.RequestID))
		}
		ew.printf("</body></html>")
		return ew.err
	})
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

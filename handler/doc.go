// Package handler turns typed request handlers into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value that Wrap fills in
// with the configured binders. It returns a Response that renders itself:
// JSON, Templ, Redirect or Empty.
//
//	type createRequest struct {
//	    Name string `form:"name"`
//	}
//
//	r.Post("/", handler.Wrap(
//	    func(ctx handler.Context, req createRequest) handler.Response {
//	        return handler.JSON(req, handler.WithJSONStatus(http.StatusCreated))
//	    },
//	    handler.WithBinders[createRequest](binder.Form()),
//	    handler.WithErrorHandler[createRequest](handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})),
//	))
//
// Binding failures reach the error handler joined with ErrBadRequest.
// Errors carrying an HTTPError keep its status, validation errors map to
// 422 and anything else is a 500. NewErrorHandler logs each error with the
// request id and answers in JSON when the client asked for it.
package handler

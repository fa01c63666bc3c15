package handler

import "net/http"

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty returns 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

type redirectResponse struct {
	url    string
	status int
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, rr.url, rr.status)
	return nil
}

// Redirect answers with 303 See Other, the post/redirect/get status.
func Redirect(url string) Response {
	return redirectResponse{url: url, status: http.StatusSeeOther}
}

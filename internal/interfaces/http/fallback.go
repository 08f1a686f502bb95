package http

import (
	"net/http"
	"strings"

	"ledger/internal/shared/apierror"
)

var probeMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

// NotFoundHandler answers requests no route claimed. It must be registered on
// mux as the "/" catch-all; a path served under other methods gets a 405 with
// an Allow header.
func NotFoundHandler(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range probeMethods {
			if method == r.Method {
				continue
			}
			probe := r.Clone(r.Context())
			probe.Method = method
			if _, pattern := mux.Handler(probe); pattern != "" && pattern != "/" {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			apierror.Write(w, r, apierror.MethodNotAllowed(r.Method))
			return
		}
		apierror.Write(w, r, apierror.NotFound("Resource not found"))
	})
}

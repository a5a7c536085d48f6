package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID reads a numeric URL parameter. The route pattern only admits digits,
// so a parse failure means the value overflows int64.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

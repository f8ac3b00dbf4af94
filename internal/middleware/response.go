package middleware

import (
	"net/http"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/httputil"
)

func writeError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, err)
}

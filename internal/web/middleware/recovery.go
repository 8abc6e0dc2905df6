package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/teamlineup/lineup/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface.
// Panics render a minimal HTML error page rather than the JSON body
// the API surface uses.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, htmlPanicHandler)
}

func htmlPanicHandler(w http.ResponseWriter, r *http.Request, err any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Something went wrong</title></head>
<body>
<h1>Something went wrong</h1>
<p>An unexpected error occurred. Please try again.</p>
<p><a href="/">Back to the lineup</a></p>
</body>
</html>`)
}

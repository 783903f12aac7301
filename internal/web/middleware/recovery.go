package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/foundry/internal/middleware"
)

// Recovery creates panic recovery middleware that answers with an HTML page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Internal Server Error</h1>
<p>The board could not be drawn. Please try again later.</p>
<p><a href="/">Back to the tables</a></p>
</body>
</html>`))
}

// Package staticfiles serves the stylesheet the screens link to.
package staticfiles

import (
	"embed"
	"net/http"
)

//go:embed css/*
var assets embed.FS

// Handler serves the embedded assets, or devDir from disk when it is set
// so stylesheet edits show up without a rebuild.
func Handler(devDir string) http.Handler {
	if devDir != "" {
		return http.FileServer(http.Dir(devDir))
	}
	return http.FileServer(http.FS(assets))
}

// Package assets embeds the single-page game UI.
package assets

import (
	"embed"
)

//go:embed index.html
var FS embed.FS

// Index returns the page served at "/".
func Index() ([]byte, error) {
	return FS.ReadFile("index.html")
}

// Package views holds the HTML templates served when a client asks for
// text/html instead of JSON.
package views

import "embed"

//go:embed *.html
var FS embed.FS

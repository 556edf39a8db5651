// Package static embeds the web assets served under /static/.
package static

import "embed"

//go:embed *.css
var FS embed.FS

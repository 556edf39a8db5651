// Package templates renders the operator-facing pages and fragments as templ
// components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Layout wraps body in the page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/main.css">
<script type="module" src="%s"></script>
</head>
<body>
<header class="site-header">
<a href="/" class="brand">YouTube Ad Revenue Predictor</a>
<nav>
<a href="/manual">Manual Entry</a>
<a href="/link">From Link</a>
</nav>
</header>
<main class="content">
`, templ.EscapeString(title), datastarCDN); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"thirdcoast.systems/adrevenue/internal/feature"
	"thirdcoast.systems/adrevenue/pkg/utils/format"
)

// Home renders the workflow chooser. apiKeySet drives the configuration
// status banner: link-based lookups are refused until a key is present.
func Home(apiKeySet bool) templ.Component {
	return Layout("YouTube Ad Revenue Predictor", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		banner := `<p class="status ok">API key loaded. Link-based lookups are available.</p>`
		if !apiKeySet {
			banner = `<p class="status error">No YouTube API key configured. Set YOUTUBE_API_KEY to enable link-based lookups; manual entry still works.</p>`
		}
		_, err := fmt.Fprintf(w, `<section class="chooser">
<h1>Estimate ad revenue for a video</h1>
%s
<div class="modes">
<a class="mode-card" href="/manual">
<h2>Manual Input</h2>
<p>Type the video metrics yourself.</p>
</a>
<a class="mode-card" href="/link">
<h2>YouTube Link</h2>
<p>Paste a video URL and fetch its statistics.</p>
</a>
</div>
</section>
`, banner)
		return err
	}))
}

// ManualPage renders the manual entry form.
func ManualPage() templ.Component {
	return Layout("Manual Input", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section>
<h1>Manual Input</h1>
<form data-on-submit="@post('/api/predict/manual', {contentType: 'form'})">
`); err != nil {
			return err
		}
		if err := numberField(w, "views", "Views", "1", "0"); err != nil {
			return err
		}
		if err := numberField(w, "likes", "Likes", "1", "0"); err != nil {
			return err
		}
		if err := numberField(w, "comments", "Comments", "1", "0"); err != nil {
			return err
		}
		if err := numberField(w, "watch_time_minutes", "Watch Time (minutes)", "any", "0"); err != nil {
			return err
		}
		if err := numberField(w, "video_length_minutes", "Video Length (minutes)", "any", "0"); err != nil {
			return err
		}
		if err := numberField(w, "subscribers", "Subscribers", "1", "0"); err != nil {
			return err
		}
		if err := categorySelect(w, ""); err != nil {
			return err
		}
		if err := deviceSelect(w, ""); err != nil {
			return err
		}
		if err := countrySelect(w, ""); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="submit">Predict Revenue</button>
</form>
<div id="predict-result"></div>
</section>
`)
		return err
	}))
}

// LinkPage renders the URL fetch form. The fetch outcome (stats review plus
// customize form, or an error) is patched into #fetch-outcome over SSE.
func LinkPage() templ.Component {
	return Layout("YouTube Link", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section>
<h1>YouTube Link</h1>
<form data-on-submit="@post('/api/fetch', {contentType: 'form'})">
<label>Paste YouTube Video URL
<input type="text" name="url" placeholder="https://www.youtube.com/watch?v=dQw4w9WgXcQ" required>
</label>
<button type="submit">Fetch Video Stats</button>
</form>
<div id="fetch-outcome"></div>
<div id="predict-result"></div>
</section>
`)
		return err
	}))
}

func numberField(w io.Writer, name, label, step, min string) error {
	_, err := fmt.Fprintf(w, `<label>%s
<input type="number" name="%s" step="%s" min="%s" required>
</label>
`, templ.EscapeString(label), name, step, min)
	return err
}

func categorySelect(w io.Writer, selected string) error {
	if _, err := io.WriteString(w, "<label>Category\n<select name=\"category\">\n"); err != nil {
		return err
	}
	for _, c := range feature.Categories() {
		if err := option(w, string(c), string(c), selected == string(c)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</select>\n</label>\n")
	return err
}

func deviceSelect(w io.Writer, selected string) error {
	if _, err := io.WriteString(w, "<label>Device\n<select name=\"device\">\n"); err != nil {
		return err
	}
	for _, d := range feature.Devices() {
		if err := option(w, string(d), string(d), selected == string(d)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</select>\n</label>\n")
	return err
}

func countrySelect(w io.Writer, selected string) error {
	if _, err := io.WriteString(w, "<label>Country\n<select name=\"country\">\n"); err != nil {
		return err
	}
	for _, c := range feature.Countries() {
		label := fmt.Sprintf("%s (%s)", c, format.CountryName(string(c)))
		if err := option(w, string(c), label, selected == string(c)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</select>\n</label>\n")
	return err
}

func option(w io.Writer, value, label string, selected bool) error {
	sel := ""
	if selected {
		sel = " selected"
	}
	_, err := fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n",
		templ.EscapeString(value), sel, templ.EscapeString(label))
	return err
}

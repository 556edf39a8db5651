package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"thirdcoast.systems/adrevenue/internal/feature"
	"thirdcoast.systems/adrevenue/pkg/utils/format"
)

// Result renders the revenue estimate fragment patched into #predict-result.
func Result(amount float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="predict-result" class="result">
<p>Estimated Ad Revenue: <strong>%s</strong></p>
</div>
`, templ.EscapeString(format.Money(amount)))
		return err
	})
}

// ErrorBox renders an inline operator-facing error into the given element id.
func ErrorBox(id, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="%s" class="error-box">
<p>%s</p>
</div>
`, templ.EscapeString(id), templ.EscapeString(msg))
		return err
	})
}

// StatsReview shows the fetched statistics and the customize-and-predict form.
// The fetch token ties the submission back to the stats stored in the session.
func StatsReview(raw feature.RawVideoStats, token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="fetch-outcome" class="stats-review">
<p class="video-id">Extracted Video ID: <code>%s</code></p>
<h2>%s</h2>
<table class="stats">
<tr><th>Views</th><td>%s</td></tr>
<tr><th>Likes</th><td>%s</td></tr>
<tr><th>Comments</th><td>%s</td></tr>
<tr><th>Watch Time (approx.)</th><td>%s</td></tr>
<tr><th>Video Length</th><td>%s</td></tr>
<tr><th>Engagement Rate</th><td>%s</td></tr>
<tr><th>Subscribers</th><td>%s</td></tr>
</table>
<h3>Customize Inputs Before Prediction</h3>
<form data-on-submit="@post('/api/predict/customize', {contentType: 'form'})">
<input type="hidden" name="token" value="%s">
`,
			templ.EscapeString(raw.VideoID),
			templ.EscapeString(raw.Title),
			format.Count(raw.Views),
			format.Count(raw.Likes),
			format.Count(raw.Comments),
			format.Minutes(raw.WatchTimeMinutes),
			format.Minutes(raw.VideoLengthMinutes),
			format.Rate(raw.EngagementRate),
			format.Count(raw.Subscribers),
			templ.EscapeString(token),
		); err != nil {
			return err
		}

		if err := categorySelect(w, string(feature.CategoryFromCode(raw.CategoryCode))); err != nil {
			return err
		}
		if err := deviceSelect(w, string(feature.DeviceMobile)); err != nil {
			return err
		}
		if err := countrySelect(w, string(feature.ParseCountry(raw.Country))); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<button type="submit">Predict Revenue</button>
</form>
</div>
`)
		return err
	})
}

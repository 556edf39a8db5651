package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"thirdcoast.systems/adrevenue/internal/feature"
)

func TestHome_APIKeyBanner(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Home(true).Render(context.Background(), &sb))
	require.Contains(t, sb.String(), "API key loaded")

	sb.Reset()
	require.NoError(t, Home(false).Render(context.Background(), &sb))
	require.Contains(t, sb.String(), "No YouTube API key configured")
}

func TestManualPage_HasAllFields(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ManualPage().Render(context.Background(), &sb))
	html := sb.String()

	for _, name := range []string{"views", "likes", "comments", "watch_time_minutes", "video_length_minutes", "subscribers"} {
		require.Contains(t, html, `name="`+name+`"`)
	}
	for _, name := range []string{"category", "device", "country"} {
		require.Contains(t, html, `name="`+name+`"`)
	}
	// No engagement rate input: it is derived, never operator-edited.
	require.NotContains(t, html, `name="engagement_rate"`)
	require.Contains(t, html, "/api/predict/manual")
}

func TestResult_FormatsCurrency(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Result(1234.5).Render(context.Background(), &sb))
	require.Contains(t, sb.String(), "$1,234.50")
	require.Contains(t, sb.String(), `id="predict-result"`)
}

func TestErrorBox_EscapesMessage(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ErrorBox("fetch-outcome", `<script>alert("x")</script>`).Render(context.Background(), &sb))
	require.NotContains(t, sb.String(), "<script>")
	require.Contains(t, sb.String(), `id="fetch-outcome"`)
}

func TestStatsReview(t *testing.T) {
	raw := feature.RawVideoStats{
		VideoID:        "dQw4w9WgXcQ",
		Title:          "Never Gonna Give You Up",
		Views:          1500000,
		Likes:          90000,
		Comments:       4000,
		EngagementRate: 0.0627,
		Subscribers:    2000000,
		CategoryCode:   "10",
		Country:        "UK",
	}

	var sb strings.Builder
	require.NoError(t, StatsReview(raw, "token-abc").Render(context.Background(), &sb))
	html := sb.String()

	require.Contains(t, html, "dQw4w9WgXcQ")
	require.Contains(t, html, "1,500,000")
	require.Contains(t, html, `value="token-abc"`)
	require.Contains(t, html, "/api/predict/customize")
	// Music (code 10) is preselected in the category dropdown.
	require.Contains(t, html, `<option value="Music" selected>`)
	require.Contains(t, html, `<option value="UK" selected>`)
}

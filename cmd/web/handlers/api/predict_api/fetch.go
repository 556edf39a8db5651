package predict_api

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"

	"thirdcoast.systems/adrevenue/cmd/web/handlers/common"
	"thirdcoast.systems/adrevenue/cmd/web/session"
	"thirdcoast.systems/adrevenue/cmd/web/templates"
	"thirdcoast.systems/adrevenue/internal/metrics"
	"thirdcoast.systems/adrevenue/internal/videoid"
	"thirdcoast.systems/adrevenue/internal/youtube"
)

// HandleFetch extracts a video id from the pasted URL, looks up its
// statistics, stores them in the operator's session under a fresh token, and
// patches the stats review + customize form into the page.
//
// src is nil when no API key is configured; the fetch is then refused with a
// configuration message before any lookup is attempted.
func HandleFetch(src youtube.StatsSource, sm *session.Manager, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		if src == nil {
			return patchError(c, "fetch-outcome",
				"No YouTube API key configured. Set YOUTUBE_API_KEY and restart, or use manual entry.")
		}

		id, err := videoid.Extract(c.FormValue("url"))
		if err != nil {
			return patchError(c, "fetch-outcome",
				"Invalid YouTube URL. Paste a link containing a video id, e.g. https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		}

		raw, err := src.Lookup(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, youtube.ErrNoData) {
				m.Lookups.WithLabelValues(metrics.LookupNoData).Inc()
				return patchError(c, "fetch-outcome",
					"Could not fetch video stats: the video was not found or has no public statistics.")
			}
			m.Lookups.WithLabelValues(metrics.LookupError).Inc()
			slog.Error("stats lookup failed", "video_id", id, "error", err)
			return patchError(c, "fetch-outcome",
				"Could not fetch video stats. Check the API key and quota, then try again.")
		}

		// The session cookie must be written before the SSE stream opens.
		token := uuid.NewString()
		if err := sm.SaveFetchedStats(c.Response().Writer, c.Request(), token, *raw); err != nil {
			slog.Error("failed to store fetched stats", "video_id", id, "error", err)
			return patchError(c, "fetch-outcome", "Could not keep the fetched stats. Try again.")
		}

		m.Lookups.WithLabelValues(metrics.LookupOK).Inc()

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())
		return sse.PatchElementTempl(templates.StatsReview(*raw, token),
			datastar.WithSelectorID("fetch-outcome"), datastar.WithModeReplace())
	}
}

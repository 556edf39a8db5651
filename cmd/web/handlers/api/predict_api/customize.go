package predict_api

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/adrevenue/cmd/web/session"
	"thirdcoast.systems/adrevenue/internal/feature"
	"thirdcoast.systems/adrevenue/internal/metrics"
	"thirdcoast.systems/adrevenue/internal/model"
)

// HandleCustomizePredict loads the session-held statistics identified by the
// submitted fetch token, applies the operator's category/device/country
// overrides, and scores the resulting record.
func HandleCustomizePredict(scorer model.Scorer, sm *session.Manager, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := sm.FetchedStats(c.Request(), c.FormValue("token"))
		if err != nil {
			if errors.Is(err, session.ErrStaleToken) {
				return patchError(c, "predict-result",
					"These statistics were replaced by a newer fetch. Fetch the video again before predicting.")
			}
			return patchError(c, "predict-result",
				"No fetched statistics found. Fetch a video first.")
		}

		rec := feature.FromRawStats(raw, feature.Overrides{
			Category: c.FormValue("category"),
			Device:   c.FormValue("device"),
			Country:  c.FormValue("country"),
		})

		estimate, err := scorer.Predict(rec)
		if err != nil {
			slog.Error("prediction failed", "path", "fetch", "video_id", raw.VideoID, "error", err)
			return patchError(c, "predict-result", "Prediction failed. Check the model artifact and try again.")
		}

		// The fetched record does not outlive the prediction call.
		if err := sm.ClearFetchedStats(c.Response().Writer, c.Request()); err != nil {
			slog.Warn("failed to clear fetched stats", "error", err)
		}

		m.Predictions.WithLabelValues("fetch").Inc()
		return patchResult(c, estimate)
	}
}

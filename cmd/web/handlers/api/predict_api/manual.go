// Package predict_api implements the form POST endpoints for both prediction
// workflows. Responses are datastar SSE patches into the page shell.
package predict_api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"

	"thirdcoast.systems/adrevenue/cmd/web/handlers/common"
	"thirdcoast.systems/adrevenue/cmd/web/templates"
	"thirdcoast.systems/adrevenue/internal/feature"
	"thirdcoast.systems/adrevenue/internal/metrics"
	"thirdcoast.systems/adrevenue/internal/model"
)

// HandleManualPredict builds a feature record from the manual form and scores it.
func HandleManualPredict(scorer model.Scorer, m *metrics.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := feature.ManualInput{
			Views:              c.FormValue("views"),
			Likes:              c.FormValue("likes"),
			Comments:           c.FormValue("comments"),
			WatchTimeMinutes:   c.FormValue("watch_time_minutes"),
			VideoLengthMinutes: c.FormValue("video_length_minutes"),
			Subscribers:        c.FormValue("subscribers"),
			Category:           c.FormValue("category"),
			Device:             c.FormValue("device"),
			Country:            c.FormValue("country"),
		}

		rec, err := feature.FromManualInput(in)
		if err != nil {
			return patchError(c, "predict-result", "Cannot predict: "+err.Error())
		}

		estimate, err := scorer.Predict(rec)
		if err != nil {
			slog.Error("prediction failed", "path", "manual", "error", err)
			return patchError(c, "predict-result", "Prediction failed. Check the model artifact and try again.")
		}

		m.Predictions.WithLabelValues("manual").Inc()
		return patchResult(c, estimate)
	}
}

// patchError streams an inline error fragment. The SSE stream is opened only
// here, after any cookie writes, since it sends response headers immediately.
func patchError(c echo.Context, id, msg string) error {
	common.SetSSEHeaders(c)
	sse := datastar.NewSSE(c.Response().Writer, c.Request())
	return sse.PatchElementTempl(templates.ErrorBox(id, msg),
		datastar.WithSelectorID(id), datastar.WithModeReplace())
}

func patchResult(c echo.Context, estimate float64) error {
	common.SetSSEHeaders(c)
	sse := datastar.NewSSE(c.Response().Writer, c.Request())
	return sse.PatchElementTempl(templates.Result(estimate),
		datastar.WithSelectorID("predict-result"), datastar.WithModeReplace())
}

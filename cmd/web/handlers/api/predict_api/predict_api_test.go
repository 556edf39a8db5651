package predict_api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"thirdcoast.systems/adrevenue/cmd/web/session"
	"thirdcoast.systems/adrevenue/internal/feature"
	"thirdcoast.systems/adrevenue/internal/metrics"
	"thirdcoast.systems/adrevenue/internal/youtube"
)

// stubScorer records every record it is asked to score.
type stubScorer struct {
	estimate float64
	err      error
	calls    []feature.Record
}

func (s *stubScorer) Predict(rec feature.Record) (float64, error) {
	s.calls = append(s.calls, rec)
	return s.estimate, s.err
}

// stubSource serves a canned lookup result.
type stubSource struct {
	raw *feature.RawVideoStats
	err error
}

func (s *stubSource) Lookup(ctx context.Context, videoID string) (*feature.RawVideoStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.raw
	out.VideoID = videoID
	return &out, nil
}

func postForm(t *testing.T, h echo.HandlerFunc, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func manualForm() url.Values {
	return url.Values{
		"views":                {"150000"},
		"likes":                {"4200"},
		"comments":             {"310"},
		"watch_time_minutes":   {"620000"},
		"video_length_minutes": {"12.4"},
		"subscribers":          {"98000"},
		"category":             {"Gaming"},
		"device":               {"Desktop"},
		"country":              {"DE"},
	}
}

func TestHandleManualPredict_CallsScorerExactlyOnce(t *testing.T) {
	scorer := &stubScorer{estimate: 812.44}
	m := metrics.New()

	rec := postForm(t, HandleManualPredict(scorer, m), manualForm(), nil)

	require.Len(t, scorer.calls, 1)
	got := scorer.calls[0]
	require.Equal(t, int64(150000), got.Views)
	require.Equal(t, feature.CategoryGaming, got.Category)
	require.Len(t, got.Row(), 10)

	require.Contains(t, rec.Body.String(), "$812.44")
	require.Equal(t, 1.0, testutil.ToFloat64(m.Predictions.WithLabelValues("manual")))
}

func TestHandleManualPredict_MissingFieldRejected(t *testing.T) {
	scorer := &stubScorer{}
	form := manualForm()
	form.Del("views")

	rec := postForm(t, HandleManualPredict(scorer, metrics.New()), form, nil)

	require.Empty(t, scorer.calls)
	require.Contains(t, rec.Body.String(), "views is required")
}

func TestHandleFetch_StoresStatsAndRendersReview(t *testing.T) {
	sm := session.NewManager("test-secret")
	m := metrics.New()
	src := &stubSource{raw: &feature.RawVideoStats{
		Title:          "Test Video",
		Views:          2000,
		Likes:          150,
		Comments:       50,
		EngagementRate: 0.1,
		Subscribers:    98000,
		CategoryCode:   "20",
		Country:        "DE",
	}}

	form := url.Values{"url": {"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}}
	rec := postForm(t, HandleFetch(src, sm, m), form, nil)

	body := rec.Body.String()
	require.Contains(t, body, "dQw4w9WgXcQ")
	require.Contains(t, body, "Test Video")
	require.Contains(t, body, "/api/predict/customize")
	require.NotEmpty(t, rec.Result().Cookies(), "fetched stats cookie must be set")
	require.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.LookupOK)))
}

func TestHandleFetch_InvalidURL(t *testing.T) {
	sm := session.NewManager("test-secret")
	src := &stubSource{raw: &feature.RawVideoStats{}}

	form := url.Values{"url": {"not a video link"}}
	rec := postForm(t, HandleFetch(src, sm, metrics.New()), form, nil)

	require.Contains(t, rec.Body.String(), "Invalid YouTube URL")
	require.Empty(t, rec.Result().Cookies(), "no state change on input error")
}

func TestHandleFetch_NoData(t *testing.T) {
	sm := session.NewManager("test-secret")
	m := metrics.New()
	src := &stubSource{err: youtube.ErrNoData}

	form := url.Values{"url": {"https://youtu.be/dQw4w9WgXcQ"}}
	rec := postForm(t, HandleFetch(src, sm, m), form, nil)

	require.Contains(t, rec.Body.String(), "not found")
	require.Empty(t, rec.Result().Cookies())
	require.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.LookupNoData)))
}

func TestHandleFetch_NoAPIKey(t *testing.T) {
	sm := session.NewManager("test-secret")

	form := url.Values{"url": {"https://youtu.be/dQw4w9WgXcQ"}}
	rec := postForm(t, HandleFetch(nil, sm, metrics.New()), form, nil)

	require.Contains(t, rec.Body.String(), "No YouTube API key configured")
}

func TestHandleCustomizePredict_EndToEnd(t *testing.T) {
	sm := session.NewManager("test-secret")
	m := metrics.New()
	scorer := &stubScorer{estimate: 99.5}

	// Seed the session the way a fetch would.
	seedRec := httptest.NewRecorder()
	seedReq := httptest.NewRequest(http.MethodPost, "/", nil)
	raw := feature.RawVideoStats{
		VideoID:        "dQw4w9WgXcQ",
		Views:          2000,
		Likes:          150,
		Comments:       50,
		EngagementRate: 0.1,
		CategoryCode:   "20",
		Country:        "DE",
	}
	require.NoError(t, sm.SaveFetchedStats(seedRec, seedReq, "token-1", raw))

	form := url.Values{
		"token":    {"token-1"},
		"category": {"Education"},
		"device":   {"TV"},
		"country":  {"IN"},
	}
	rec := postForm(t, HandleCustomizePredict(scorer, sm, m), form, seedRec.Result().Cookies())

	require.Len(t, scorer.calls, 1)
	got := scorer.calls[0]
	require.Equal(t, feature.CategoryEducation, got.Category)
	require.Equal(t, feature.DeviceTV, got.Device)
	require.Equal(t, feature.CountryIN, got.Country)
	// Fetch-time engagement rate propagated, not recomputed.
	require.Equal(t, 0.1, got.EngagementRate)

	require.Contains(t, rec.Body.String(), "$99.50")
	require.Equal(t, 1.0, testutil.ToFloat64(m.Predictions.WithLabelValues("fetch")))
}

func TestHandleCustomizePredict_StaleToken(t *testing.T) {
	sm := session.NewManager("test-secret")
	scorer := &stubScorer{}

	seedRec := httptest.NewRecorder()
	seedReq := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, sm.SaveFetchedStats(seedRec, seedReq, "token-2", feature.RawVideoStats{}))

	form := url.Values{"token": {"token-1"}}
	rec := postForm(t, HandleCustomizePredict(scorer, sm, metrics.New()), form, seedRec.Result().Cookies())

	require.Empty(t, scorer.calls)
	require.Contains(t, rec.Body.String(), "newer fetch")
}

func TestHandleCustomizePredict_NothingFetched(t *testing.T) {
	sm := session.NewManager("test-secret")
	scorer := &stubScorer{}

	form := url.Values{"token": {"token-1"}}
	rec := postForm(t, HandleCustomizePredict(scorer, sm, metrics.New()), form, nil)

	require.Empty(t, scorer.calls)
	require.Contains(t, rec.Body.String(), "Fetch a video first")
}

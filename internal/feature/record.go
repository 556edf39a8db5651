// Package feature builds the canonical feature record consumed by the revenue
// model, from either manual form input or fetched video statistics.
package feature

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is the fixed-schema row the predictor scores. The column names in
// Row() must match the model artifact exactly.
type Record struct {
	Views              int64
	Likes              int64
	Comments           int64
	WatchTimeMinutes   float64
	VideoLengthMinutes float64
	Subscribers        int64
	Category           Category
	Device             Device
	Country            Country
	EngagementRate     float64
}

// Columns returns the canonical column names in artifact order.
func Columns() []string {
	return []string{
		"views",
		"likes",
		"comments",
		"watch_time_minutes",
		"video_length_minutes",
		"subscribers",
		"category",
		"device",
		"country",
		"engagement_rate",
	}
}

// Row returns the record keyed by column name. Numeric columns are float64,
// enumerated columns are string.
func (r Record) Row() map[string]any {
	return map[string]any{
		"views":                float64(r.Views),
		"likes":                float64(r.Likes),
		"comments":             float64(r.Comments),
		"watch_time_minutes":   r.WatchTimeMinutes,
		"video_length_minutes": r.VideoLengthMinutes,
		"subscribers":          float64(r.Subscribers),
		"category":             string(r.Category),
		"device":               string(r.Device),
		"country":              string(r.Country),
		"engagement_rate":      r.EngagementRate,
	}
}

// ManualInput carries raw form values from the manual entry workflow.
type ManualInput struct {
	Views              string
	Likes              string
	Comments           string
	WatchTimeMinutes   string
	VideoLengthMinutes string
	Subscribers        string
	Category           string
	Device             string
	Country            string
}

// FromManualInput validates manual form values and builds a Record.
//
// Every numeric field is required; a missing or non-numeric value fails with
// an error naming the field. Enumerated fields fall back to their defaults, so
// no combination of selector values is unconstructible. The engagement rate is
// always recomputed from the submitted counters.
func FromManualInput(in ManualInput) (Record, error) {
	views, err := parseCount("views", in.Views)
	if err != nil {
		return Record{}, err
	}
	likes, err := parseCount("likes", in.Likes)
	if err != nil {
		return Record{}, err
	}
	comments, err := parseCount("comments", in.Comments)
	if err != nil {
		return Record{}, err
	}
	subscribers, err := parseCount("subscribers", in.Subscribers)
	if err != nil {
		return Record{}, err
	}
	watchTime, err := parseMinutes("watch time", in.WatchTimeMinutes)
	if err != nil {
		return Record{}, err
	}
	videoLength, err := parseMinutes("video length", in.VideoLengthMinutes)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Views:              views,
		Likes:              likes,
		Comments:           comments,
		WatchTimeMinutes:   watchTime,
		VideoLengthMinutes: videoLength,
		Subscribers:        subscribers,
		Category:           ParseCategory(in.Category),
		Device:             ParseDevice(in.Device),
		Country:            ParseCountry(in.Country),
		EngagementRate:     EngagementRate(views, likes, comments),
	}, nil
}

func parseCount(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return v, nil
}

func parseMinutes(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number of minutes", field)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return v, nil
}

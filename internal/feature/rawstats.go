package feature

// RawVideoStats is the unnormalized data fetched from the metadata API for one
// video/channel pair. It is transient: created by a successful lookup, held in
// the operator's session until the prediction is confirmed, then discarded.
type RawVideoStats struct {
	VideoID            string  `json:"video_id"`
	Title              string  `json:"title"`
	Views              int64   `json:"views"`
	Likes              int64   `json:"likes"`
	Comments           int64   `json:"comments"`
	WatchTimeMinutes   float64 `json:"watch_time_minutes"`
	VideoLengthMinutes float64 `json:"video_length_minutes"`
	EngagementRate     float64 `json:"engagement_rate"`
	Subscribers        int64   `json:"subscribers"`
	CategoryCode       string  `json:"category_code"`
	Country            string  `json:"country"`
}

// Overrides are the operator-editable fields on the fetch path. Counters are
// not editable post-fetch; only the enumerated fields are.
type Overrides struct {
	Category string
	Device   string
	Country  string
}

// FromRawStats builds a Record from fetched statistics plus operator
// overrides for the enumerated fields.
//
// The engagement rate computed at fetch time is propagated unchanged rather
// than rederived here; since the counters cannot be edited after a fetch, the
// two are always equal in practice.
func FromRawStats(raw RawVideoStats, ov Overrides) Record {
	category := ov.Category
	if category == "" {
		category = string(CategoryFromCode(raw.CategoryCode))
	}
	country := ov.Country
	if country == "" {
		country = raw.Country
	}

	return Record{
		Views:              raw.Views,
		Likes:              raw.Likes,
		Comments:           raw.Comments,
		WatchTimeMinutes:   raw.WatchTimeMinutes,
		VideoLengthMinutes: raw.VideoLengthMinutes,
		Subscribers:        raw.Subscribers,
		Category:           ParseCategory(category),
		Device:             ParseDevice(ov.Device),
		Country:            ParseCountry(country),
		EngagementRate:     raw.EngagementRate,
	}
}

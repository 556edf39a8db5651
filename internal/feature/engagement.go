package feature

// EngagementRate computes (likes + comments) / views.
//
// Defined as exactly 0 when views is 0, for any likes/comments. Pure; both the
// manual and fetch paths derive the rate through this function so the two flows
// can never disagree on how it is computed.
func EngagementRate(views, likes, comments int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(likes+comments) / float64(views)
}

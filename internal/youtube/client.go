// Package youtube fetches video and channel statistics from the YouTube Data API.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"thirdcoast.systems/adrevenue/internal/feature"
	"thirdcoast.systems/adrevenue/pkg/utils/isodur"
)

// watchTimeFactor approximates total watch time as viewCount x 5 minutes.
// The API does not expose watch time; this is an acknowledged heuristic, kept
// here so it can be replaced without touching the feature normalizer.
const watchTimeFactor = 5

// ErrNoData is returned when the API has no usable data for the video:
// unknown id, private/removed video, or an empty statistics payload.
var ErrNoData = errors.New("no data available for video")

// StatsSource looks up raw statistics for a validated video identifier.
type StatsSource interface {
	Lookup(ctx context.Context, videoID string) (*feature.RawVideoStats, error)
}

// Client is a StatsSource backed by the YouTube Data API v3.
type Client struct {
	svc     *youtubeapi.Service
	timeout time.Duration
}

// NewClient builds a Data API client from an API key. The timeout bounds each
// Lookup call end to end (both sequential queries).
func NewClient(ctx context.Context, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("youtube: api key is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	svc, err := youtubeapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{svc: svc, timeout: timeout}, nil
}

// Lookup fetches video-level statistics/snippet/duration, then channel-level
// statistics/snippet keyed by the channel id from the first response, and
// merges both into a RawVideoStats record.
//
// Failures are returned to the caller; no partial record is ever produced.
func (c *Client) Lookup(ctx context.Context, videoID string) (*feature.RawVideoStats, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, fmt.Errorf("youtube: videoID is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	videoResp, err := c.svc.Videos.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch video statistics: %w", err)
	}
	if len(videoResp.Items) == 0 {
		return nil, ErrNoData
	}

	video := videoResp.Items[0]
	if video.Statistics == nil || video.Snippet == nil {
		return nil, ErrNoData
	}

	views := int64(video.Statistics.ViewCount)
	likes := int64(video.Statistics.LikeCount)
	comments := int64(video.Statistics.CommentCount)

	lengthMinutes := 0.0
	if video.ContentDetails != nil {
		lengthMinutes = isodur.Minutes(video.ContentDetails.Duration)
	}

	categoryCode := video.Snippet.CategoryId
	if categoryCode == "" {
		categoryCode = feature.DefaultCategoryCode
	}

	subscribers, country := c.channelInfo(ctx, video.Snippet.ChannelId)

	return &feature.RawVideoStats{
		VideoID:            videoID,
		Title:              video.Snippet.Title,
		Views:              views,
		Likes:              likes,
		Comments:           comments,
		WatchTimeMinutes:   float64(views) * watchTimeFactor,
		VideoLengthMinutes: lengthMinutes,
		EngagementRate:     feature.EngagementRate(views, likes, comments),
		Subscribers:        subscribers,
		CategoryCode:       categoryCode,
		Country:            country,
	}, nil
}

// channelInfo fetches subscriber count and country for a channel. Incomplete
// channel data is not fatal: subscribers default to 0 and country to "US".
func (c *Client) channelInfo(ctx context.Context, channelID string) (int64, string) {
	subscribers := int64(0)
	country := "US"

	if strings.TrimSpace(channelID) == "" {
		return subscribers, country
	}

	resp, err := c.svc.Channels.
		List([]string{"statistics", "snippet"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		slog.Warn("channel lookup failed, using defaults", "channel_id", channelID, "error", err)
		return subscribers, country
	}
	if len(resp.Items) == 0 {
		return subscribers, country
	}

	ch := resp.Items[0]
	if ch.Statistics != nil {
		subscribers = int64(ch.Statistics.SubscriberCount)
	}
	if ch.Snippet != nil && ch.Snippet.Country != "" {
		country = ch.Snippet.Country
	}

	return subscribers, country
}

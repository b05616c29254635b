package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/forecast"
	"go.uber.org/zap"
)

const bbcName = "bbc"

// BBC adapts the BBC Weather 3-day RSS feed. The feed carries prose
// summaries rather than measurements, so this adapter deliberately stops
// at the raw titles and descriptions instead of normalizing into
// records. It is the least-complete provider in the set.
type BBC struct {
	feedURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewBBC(cfg config.ProviderConfig, deps Deps) Adapter {
	return &BBC{
		feedURL: cfg.BaseURL,
		client:  deps.Client,
		logger:  deps.Logger.With(zap.String("provider", bbcName)),
	}
}

func (b *BBC) Name() string { return bbcName }

type bbcFeed struct {
	Channel struct {
		Title string `xml:"title"`
		Items []struct {
			Title       string `xml:"title"`
			Description string `xml:"description"`
		} `xml:"item"`
	} `xml:"channel"`
}

func (b *BBC) FetchByCoordinate(ctx context.Context, lat, lon float64) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.feedURL, nil)
	if err != nil {
		return Result{}, forecast.FetchError(bbcName, err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return Result{}, forecast.FetchError(bbcName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, forecast.FetchError(bbcName, fmt.Errorf("request failed with status %d", resp.StatusCode))
	}

	var feed bbcFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return Result{}, forecast.DataError(bbcName, "decoding feed: %v", err)
	}

	summary := &forecast.FeedSummary{Title: feed.Channel.Title}
	for _, item := range feed.Channel.Items {
		summary.Items = append(summary.Items, forecast.FeedItem{
			Title:       item.Title,
			Description: item.Description,
		})
	}
	return Result{Feed: summary}, nil
}

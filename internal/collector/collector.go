package collector

import (
	"context"
	"log"
	"sync"
	"time"

	"MarketBoard/internal/feed"
	"MarketBoard/internal/model"
)

// Collector assembles a full snapshot from the feed gateway. The six
// resource loads are independent: each runs in its own goroutine and a
// failure leaves that snapshot field nil without disturbing the others.
// Collect never fails as a whole; a snapshot with nil fields is valid and
// its widgets render their fallback text.
type Collector struct {
	Gateway *feed.Gateway
}

func NewCollector(gw *feed.Gateway) *Collector {
	return &Collector{Gateway: gw}
}

// Collect fetches every snapshot resource concurrently.
func (c *Collector) Collect(ctx context.Context) *model.Snapshot {
	snap := &model.Snapshot{FetchedAt: time.Now()}

	var wg sync.WaitGroup
	load := func(resource string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Printf("[WARN] collect %s: %v", resource, err)
			}
		}()
	}

	load(feed.ResourceMarketHistory, func() error {
		market, err := c.Gateway.MarketHistory(ctx)
		if err != nil {
			return err
		}
		snap.Market = market
		return nil
	})
	load(feed.ResourceSentiment, func() error {
		s, err := c.Gateway.Sentiment(ctx)
		if err != nil {
			return err
		}
		snap.Sentiment = s
		return nil
	})
	load(feed.ResourceSentimentHistory, func() error {
		points, err := c.Gateway.SentimentHistory(ctx)
		if err != nil {
			return err
		}
		snap.SentimentHistory = points
		return nil
	})
	load(feed.ResourceRates, func() error {
		r, err := c.Gateway.Rates(ctx)
		if err != nil {
			return err
		}
		snap.Rates = r
		return nil
	})
	load(feed.ResourceBreadth, func() error {
		b, err := c.Gateway.Breadth(ctx)
		if err != nil {
			return err
		}
		snap.Breadth = b
		return nil
	})
	load(feed.ResourceAnalysis, func() error {
		a, err := c.Gateway.Analysis(ctx)
		if err != nil {
			return err
		}
		snap.Analysis = a
		return nil
	})

	wg.Wait()
	return snap
}

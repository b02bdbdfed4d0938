package recorder

import (
	"math"
	"sort"
	"time"

	"MarketBoard/internal/calculator"
	"MarketBoard/internal/model"
)

// QuoteRecord is one symbol's headline row at refresh time.
type QuoteRecord struct {
	Symbol        string
	Close         float64
	ChangePercent float64 // NaN stored as NULL
}

// RefreshRecord is the archivable summary of one watch-mode refresh:
// latest quotes, sentiment, rates and breadth. Full histories are not
// archived, the sync process already owns them.
type RefreshRecord struct {
	FetchedAt time.Time
	Quotes    []QuoteRecord
	Sentiment *model.Sentiment
	Rates     *model.Rates
	Breadth   *model.Breadth
}

// FromSnapshot extracts the archivable rows for the given symbols. Symbols
// without a usable series are skipped.
func FromSnapshot(snap *model.Snapshot, symbols []string) *RefreshRecord {
	rec := &RefreshRecord{
		FetchedAt: snap.FetchedAt,
		Sentiment: snap.Sentiment,
		Rates:     snap.Rates,
		Breadth:   snap.Breadth,
	}
	for _, symbol := range symbols {
		price, change, ok := calculator.LatestChange(snap.Market.History(symbol))
		if !ok {
			continue
		}
		rec.Quotes = append(rec.Quotes, QuoteRecord{Symbol: symbol, Close: price, ChangePercent: change})
	}
	sort.Slice(rec.Quotes, func(i, j int) bool { return rec.Quotes[i].Symbol < rec.Quotes[j].Symbol })
	return rec
}

// Recorder archives refresh summaries for later inspection.
type Recorder interface {
	RecordRefresh(rec *RefreshRecord) error
	Close() error
}

// nullableFloat maps NaN/Inf to a SQL NULL.
func nullableFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

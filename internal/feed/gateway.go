package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"MarketBoard/internal/calculator"
	"MarketBoard/internal/model"
)

// Snapshot resource names, fixed by the sync process.
const (
	ResourceMarketHistory    = "market_data_history.json"
	ResourceSentiment        = "fear_greed_index.json"
	ResourceSentimentHistory = "fear_greed_history.json"
	ResourceRates            = "hibor_rates.json"
	ResourceBreadth          = "market_breadth.json"
	ResourceAnalysis         = "ai_analysis.json"
)

// ErrUnavailable is the single sentinel for transport failures, non-200
// statuses and unparseable documents. The underlying cause is logged here
// and never crosses the gateway boundary: every consumer treats it the same
// way, by rendering the widget's fallback text.
var ErrUnavailable = errors.New("feed: data unavailable")

// ShapeError reports a document that parsed as JSON but does not match the
// expected shape.
type ShapeError struct {
	Resource string
	Reason   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("feed: %s: unexpected shape: %s", e.Resource, e.Reason)
}

// Gateway is the typed boundary over a Source. Each loader fetches one
// resource, sanitizes non-finite literals, decodes it, and normalizes
// legacy field aliases so downstream code only ever sees the canonical
// schema.
type Gateway struct {
	src Source
}

func NewGateway(src Source) *Gateway { return &Gateway{src: src} }

// SourceName identifies the underlying source for startup logging.
func (g *Gateway) SourceName() string { return g.src.Name() }

// fetch retrieves and decodes one resource. Transport, status and parse
// failures collapse into ErrUnavailable; a JSON document of the wrong type
// becomes a ShapeError.
func (g *Gateway) fetch(ctx context.Context, name string, v any) error {
	data, err := g.src.Get(ctx, name)
	if err != nil {
		log.Printf("[WARN] feed: %v", err)
		return ErrUnavailable
	}
	if err := json.Unmarshal(sanitizeNonFinite(data), v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ShapeError{Resource: name, Reason: err.Error()}
		}
		log.Printf("[WARN] feed: parse %s: %v", name, err)
		return ErrUnavailable
	}
	return nil
}

// MarketHistory loads the per-symbol daily series. Structurally broken
// symbol entries are skipped with a warning instead of failing the whole
// document; surviving series are sorted ascending with duplicate dates
// dropped (last one wins).
func (g *Gateway) MarketHistory(ctx context.Context) (model.MarketHistory, error) {
	var raw map[string]json.RawMessage
	if err := g.fetch(ctx, ResourceMarketHistory, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, &ShapeError{Resource: ResourceMarketHistory, Reason: "no symbols"}
	}

	market := make(model.MarketHistory, len(raw))
	for symbol, entry := range raw {
		var history model.History
		if err := json.Unmarshal(entry, &history); err != nil {
			log.Printf("[WARN] feed: %s: skipping symbol %s: %v", ResourceMarketHistory, symbol, err)
			continue
		}
		market[symbol] = normalizeHistory(history)
	}
	if len(market) == 0 {
		return nil, &ShapeError{Resource: ResourceMarketHistory, Reason: "no decodable symbol entries"}
	}
	return market, nil
}

// Sentiment loads the latest fear/greed reading. A missing classification
// label is filled from the canonical value bands.
func (g *Gateway) Sentiment(ctx context.Context) (*model.Sentiment, error) {
	var s model.Sentiment
	if err := g.fetch(ctx, ResourceSentiment, &s); err != nil {
		return nil, err
	}
	if s.Value == 0 && s.Classification == "" && s.Timestamp == 0 {
		return nil, &ShapeError{Resource: ResourceSentiment, Reason: "no recognizable fields"}
	}
	if s.Classification == "" {
		s.Classification = calculator.ClassifySentiment(s.Value)
	}
	return &s, nil
}

// SentimentHistory loads the sentiment history array. A bare array is
// canonical; the wrapped {"data": [...]} form some revisions synced is
// accepted too.
func (g *Gateway) SentimentHistory(ctx context.Context) ([]model.SentimentPoint, error) {
	var points []model.SentimentPoint
	err := g.fetch(ctx, ResourceSentimentHistory, &points)
	if err == nil {
		return points, nil
	}
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		return nil, err
	}
	var wrapped struct {
		Data []model.SentimentPoint `json:"data"`
	}
	if err := g.fetch(ctx, ResourceSentimentHistory, &wrapped); err != nil || wrapped.Data == nil {
		return nil, shapeErr
	}
	return wrapped.Data, nil
}

// legacyTenorRate is the old array form of the HIBOR snapshot.
type legacyTenorRate struct {
	Tenor string  `json:"tenor"`
	Rate  float64 `json:"rate"`
}

// Rates loads the HIBOR snapshot, accepting the canonical object form and
// the legacy array-of-tenors form.
func (g *Gateway) Rates(ctx context.Context) (*model.Rates, error) {
	var r model.Rates
	err := g.fetch(ctx, ResourceRates, &r)
	if err == nil {
		if len(r.Rates) == 0 {
			return nil, &ShapeError{Resource: ResourceRates, Reason: "no tenor rates"}
		}
		return &r, nil
	}
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		return nil, err
	}

	var legacy []legacyTenorRate
	if err := g.fetch(ctx, ResourceRates, &legacy); err != nil || len(legacy) == 0 {
		return nil, shapeErr
	}
	r = model.Rates{Rates: make(map[string]float64, len(legacy))}
	for _, tr := range legacy {
		if tr.Tenor != "" {
			r.Rates[tr.Tenor] = tr.Rate
		}
	}
	if len(r.Rates) == 0 {
		return nil, shapeErr
	}
	return &r, nil
}

// Breadth loads the advancers/decliners summary.
func (g *Gateway) Breadth(ctx context.Context) (*model.Breadth, error) {
	var b model.Breadth
	if err := g.fetch(ctx, ResourceBreadth, &b); err != nil {
		return nil, err
	}
	if b.Counted() == 0 {
		return nil, &ShapeError{Resource: ResourceBreadth, Reason: "no counted symbols"}
	}
	if b.TotalSymbols == 0 {
		b.TotalSymbols = b.Counted()
	}
	return &b, nil
}

// Analysis loads the generated market commentary.
func (g *Gateway) Analysis(ctx context.Context) (*model.Analysis, error) {
	var a model.Analysis
	if err := g.fetch(ctx, ResourceAnalysis, &a); err != nil {
		return nil, err
	}
	if a.Analysis == "" {
		return nil, &ShapeError{Resource: ResourceAnalysis, Reason: "missing analysis text"}
	}
	return &a, nil
}

// normalizeHistory sorts ascending by date and drops duplicate dates, last
// one wins. The windowing and cumulative projections both assume this
// ordering.
func normalizeHistory(h model.History) model.History {
	if len(h) < 2 {
		return h
	}
	sort.SliceStable(h, func(i, j int) bool { return h[i].Date < h[j].Date })
	out := h[:0]
	for _, pt := range h {
		if n := len(out); n > 0 && out[n-1].Date == pt.Date {
			out[n-1] = pt
			continue
		}
		out = append(out, pt)
	}
	return out
}

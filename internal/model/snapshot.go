package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// flexNumber decodes a JSON number or a numeric string; the snapshot
// generator emitted both across revisions. null decodes as zero.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = flexNumber(f)
	return nil
}

// Sentiment is the latest fear/greed reading (fear_greed_index.json).
type Sentiment struct {
	Value          float64
	Classification string
	Timestamp      int64 // epoch seconds
}

// sentimentJSON accepts the canonical field names plus the legacy aliases
// some snapshot revisions used for the classification label.
type sentimentJSON struct {
	Value          flexNumber `json:"value"`
	Classification string     `json:"classification"`
	Sentiment      string     `json:"sentiment"`
	Status         string     `json:"status"`
	Timestamp      int64      `json:"timestamp"`
}

func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var raw sentimentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Value = float64(raw.Value)
	s.Classification = firstNonEmpty(raw.Classification, raw.Sentiment, raw.Status)
	s.Timestamp = raw.Timestamp
	return nil
}

// SentimentPoint is one entry of the sentiment history array
// (fear_greed_history.json). Either Date or Timestamp may be present.
type SentimentPoint struct {
	Date           string
	Timestamp      int64
	Value          float64
	Classification string
}

type sentimentPointJSON struct {
	Date           string     `json:"date"`
	Timestamp      int64      `json:"timestamp"`
	Value          flexNumber `json:"value"`
	Classification string     `json:"classification"`
	Sentiment      string     `json:"sentiment"`
	Status         string     `json:"status"`
}

func (p *SentimentPoint) UnmarshalJSON(data []byte) error {
	var raw sentimentPointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Date = raw.Date
	p.Timestamp = raw.Timestamp
	p.Value = float64(raw.Value)
	p.Classification = firstNonEmpty(raw.Classification, raw.Sentiment, raw.Status)
	return nil
}

// Day resolves the point's calendar day from whichever field is populated.
func (p SentimentPoint) Day() (time.Time, bool) {
	if p.Date != "" {
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			return t, true
		}
	}
	if p.Timestamp > 0 {
		return time.Unix(p.Timestamp, 0).UTC(), true
	}
	return time.Time{}, false
}

// Rates is the HIBOR snapshot (hibor_rates.json): tenor token → annual rate.
type Rates struct {
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
	Source string             `json:"source"`
}

// Breadth is the advancers/decliners summary (market_breadth.json).
type Breadth struct {
	Date         string `json:"date"`
	Advancers    int    `json:"advancers"`
	Decliners    int    `json:"decliners"`
	Neutral      int    `json:"neutral"`
	TotalSymbols int    `json:"total_symbols"`
}

// Counted returns the number of symbols that produced a reading.
func (b Breadth) Counted() int {
	return b.Advancers + b.Decliners + b.Neutral
}

// Analysis is the generated market commentary (ai_analysis.json).
type Analysis struct {
	Date         string `json:"date"`
	Model        string `json:"model"`
	Analysis     string `json:"analysis"`
	Prediction7d string `json:"prediction_7_day"`
	Confidence   string `json:"confidence"`
}

// Snapshot bundles everything one refresh fetched. It is built once per
// refresh and then only read: period and filter changes recompute from the
// held snapshot without touching the network. A nil field means that
// resource failed to load; its widget renders the fallback text while the
// rest of the board renders normally.
type Snapshot struct {
	Market           MarketHistory
	Sentiment        *Sentiment
	SentimentHistory []SentimentPoint
	Rates            *Rates
	Breadth          *Breadth
	Analysis         *Analysis
	FetchedAt        time.Time
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

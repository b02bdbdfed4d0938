package calculator

// sentimentBands maps fear/greed values to their canonical label. Used when
// a feed revision omits or misnames the classification field.
var sentimentBands = []struct {
	MaxValue float64
	Label    string
}{
	{24, "Extreme Fear"},
	{44, "Fear"},
	{55, "Neutral"},
	{75, "Greed"},
	{100, "Extreme Greed"},
}

// ClassifySentiment maps a 0~100 fear/greed value to its label. Out-of-range
// values clamp to the nearest band.
func ClassifySentiment(value float64) string {
	for _, b := range sentimentBands {
		if value <= b.MaxValue {
			return b.Label
		}
	}
	return sentimentBands[len(sentimentBands)-1].Label
}

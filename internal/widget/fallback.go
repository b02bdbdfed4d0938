package widget

// UnavailableText is the fixed user-visible string substituted for a
// widget's content when its data is missing or failed to load. Renderers
// never distinguish the two cases.
const UnavailableText = "数据暂不可用"

// Unavailable renders the fallback widget for the given title.
func Unavailable(title string) string {
	if title == "" {
		return UnavailableText
	}
	return title + "\n" + UnavailableText
}

package recorder

// NoopRecorder is used when no database is configured: the board itself
// persists nothing.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRefresh(_ *RefreshRecord) error { return nil }
func (n *NoopRecorder) Close() error                         { return nil }

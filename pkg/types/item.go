package types

// Item is a named stock-keeping unit and the quantity currently held.
type Item struct {
	Name     string `json:"item" yaml:"item"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// LogSink receives human-readable entries describing add operations.
// The store never retains or persists what it appends.
type LogSink interface {
	Append(entry string)
}

// Log is a slice-backed LogSink.
type Log []string

// Append adds entry to the end of the log.
func (l *Log) Append(entry string) {
	*l = append(*l, entry)
}

package reader

// Reader produces raw records keyed by column header.
type Reader interface {
	Read() ([]map[string]string, error)
}

// HeaderReader additionally exposes the header row so callers can check
// the schema before mapping any records.
type HeaderReader interface {
	ReadWithHeader() (headers []string, records []map[string]string, err error)
}

package calculator

// History is an append-only, insertion-ordered list of formatted records.
type History struct {
	entries []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append adds a record at the end.
func (h *History) Append(record string) {
	h.entries = append(h.entries, record)
}

// Entries returns a copy of the records, oldest first.
func (h *History) Entries() []string {
	result := make([]string, len(h.entries))
	copy(result, h.entries)
	return result
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.entries)
}

// IsEmpty reports whether nothing has been recorded yet.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

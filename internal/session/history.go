package session

// History is the ordered scrollback of a session.
type History struct {
	entries []Entry
}

// NewHistory creates a history holding seed.
func NewHistory(seed ...Entry) *History {
	h := &History{}
	h.Reset(seed...)
	return h
}

// Append adds entries at the end.
func (h *History) Append(entries ...Entry) {
	h.entries = append(h.entries, entries...)
}

// ReplaceLast swaps the final entry for entries.
func (h *History) ReplaceLast(entries ...Entry) error {
	if len(h.entries) == 0 {
		return ErrHistoryEmpty
	}
	h.entries = append(h.entries[:len(h.entries)-1], entries...)
	return nil
}

// Replace swaps the entry with the given ID for entries, searching from the end.
// It reports whether the entry was found.
func (h *History) Replace(id string, entries ...Entry) bool {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].EntryID() != id {
			continue
		}
		if i == len(h.entries)-1 {
			_ = h.ReplaceLast(entries...)
			return true
		}
		tail := append([]Entry(nil), h.entries[i+1:]...)
		h.entries = append(append(h.entries[:i], entries...), tail...)
		return true
	}
	return false
}

// Reset drops every entry and starts over from seed.
func (h *History) Reset(seed ...Entry) {
	h.entries = append(make([]Entry, 0, len(seed)), seed...)
}

// Entries returns a copy of the entries in order.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the final entry.
func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

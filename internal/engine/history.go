package engine

// MaxHistory bounds how many processed commands a game remembers.
const MaxHistory = 50

type HistoryEntry struct {
	Turn         int
	PlayerAction string
	Outcome      string
	Status       Status
}

// History is the log of processed commands, oldest first.
type History struct {
	Entries []HistoryEntry
}

// Add appends an entry and drops the oldest ones past MaxHistory.
func (h *History) Add(entry HistoryEntry) {
	h.Entries = append(h.Entries, entry)
	if over := len(h.Entries) - MaxHistory; over > 0 {
		h.Entries = append(h.Entries[:0:0], h.Entries[over:]...)
	}
}

// Last returns up to n of the most recent entries.
func (h *History) Last(n int) []HistoryEntry {
	if n <= 0 {
		return nil
	}
	if n > len(h.Entries) {
		n = len(h.Entries)
	}
	return h.Entries[len(h.Entries)-n:]
}

func (h *History) Len() int { return len(h.Entries) }

package combobox

import "sync"

// Ticket identifies one asynchronous option fetch.
type Ticket struct {
	Seq   uint64
	Query string
}

// QueryGate keys asynchronous option results to the query that triggered them
// so a slow response for an old query can never replace options for a newer
// one. It is safe for concurrent use; fetches typically complete on other
// goroutines.
type QueryGate struct {
	mu     sync.Mutex
	latest Ticket
}

// Begin records query as the most recent one and returns its ticket.
func (g *QueryGate) Begin(query string) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.latest = Ticket{Seq: g.latest.Seq + 1, Query: query}
	return g.latest
}

// Accept reports whether results for t are still current.
func (g *QueryGate) Accept(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return t.Seq != 0 && t == g.latest
}

// Latest returns the most recently issued ticket.
func (g *QueryGate) Latest() Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.latest
}

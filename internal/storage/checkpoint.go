package storage

// Checkpoint is the append-only record of search queries that have already
// been executed. Order is preserved across runs; membership checks go
// through a set so Add is cheap even for large catalogs.
type Checkpoint struct {
	queries []string
	seen    map[string]struct{}
}

// checkpointFile is the JSON shape of the checkpoint on disk.
type checkpointFile struct {
	CompletedQueries []string `json:"completed_queries"`
}

// NewCheckpoint creates an empty checkpoint.
func NewCheckpoint() *Checkpoint {
	return &Checkpoint{
		seen: make(map[string]struct{}),
	}
}

// Contains reports whether a query has already been completed.
func (c *Checkpoint) Contains(query string) bool {
	_, ok := c.seen[query]
	return ok
}

// Add marks a query as completed. Duplicates are ignored, and nothing is
// ever removed, so the set only grows.
func (c *Checkpoint) Add(query string) {
	if c.Contains(query) {
		return
	}
	c.seen[query] = struct{}{}
	c.queries = append(c.queries, query)
}

// Len returns the number of completed queries.
func (c *Checkpoint) Len() int {
	return len(c.queries)
}

// Queries returns the completed queries in completion order.
func (c *Checkpoint) Queries() []string {
	out := make([]string, len(c.queries))
	copy(out, c.queries)
	return out
}

package court

// Table is an insertion-ordered collection of courts keyed by place ID.
// Insertion order is what "table order" means everywhere else in the
// pipeline: enrichment candidates are selected in the order courts were
// first discovered, and the output file is written in the same order.
type Table struct {
	order []string
	byID  map[string]*Court
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		byID: make(map[string]*Court),
	}
}

// Add inserts a court if its place ID is not already present and reports
// whether it was inserted. First-seen wins: a later hit for an existing ID
// is dropped and never overwrites descriptive fields.
func (t *Table) Add(c *Court) bool {
	if c == nil || c.PlaceID == "" {
		return false
	}
	if _, exists := t.byID[c.PlaceID]; exists {
		return false
	}
	t.byID[c.PlaceID] = c
	t.order = append(t.order, c.PlaceID)
	return true
}

// Get returns the court for the given place ID, or nil.
func (t *Table) Get(placeID string) *Court {
	return t.byID[placeID]
}

// Len returns the number of courts in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Courts returns all courts in insertion order. The returned slice is a
// fresh copy but the courts themselves are shared, so mutating them
// mutates the table.
func (t *Table) Courts() []*Court {
	courts := make([]*Court, 0, len(t.order))
	for _, id := range t.order {
		courts = append(courts, t.byID[id])
	}
	return courts
}

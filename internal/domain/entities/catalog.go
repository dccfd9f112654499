package entities

// Catalog indexes a fetched batch by identifier. The batch order is kept as-is.
type Catalog struct {
	records []Record
	byID    map[int]int
}

// NewCatalog builds an index over records. If an id repeats, the first occurrence wins.
func NewCatalog(records []Record) *Catalog {
	c := &Catalog{
		records: records,
		byID:    make(map[int]int, len(records)),
	}
	for i, r := range records {
		if _, ok := c.byID[r.ID]; !ok {
			c.byID[r.ID] = i
		}
	}
	return c
}

// Records returns the batch in source order.
func (c *Catalog) Records() []Record {
	return c.records
}

// Len returns the number of records in the batch.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ByID looks up a record by identifier.
func (c *Catalog) ByID(id int) (Record, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

package learner

// Record is one learned utility.
type Record struct {
	Vector CategoryVector
	Value  float64
}

// Table maps category vectors to learned utilities. It only grows: records are
// appended on first visit and their values are updated in place afterwards.
// A Table is not safe for concurrent use.
type Table struct {
	records []*Record
	index   map[CategoryVector]*Record
}

func NewTable() *Table {
	return &Table{index: make(map[CategoryVector]*Record)}
}

// Lookup returns the stored utility of v, if v was ever visited.
func (t *Table) Lookup(v CategoryVector) (float64, bool) {
	r, ok := t.index[v]
	if !ok {
		return 0, false
	}
	return r.Value, true
}

// Value returns the stored utility of v, or 0 for unseen vectors.
func (t *Table) Value(v CategoryVector) float64 {
	value, _ := t.Lookup(v)
	return value
}

// Upsert updates the record of v or appends a new one, and reports whether
// a record was appended.
func (t *Table) Upsert(v CategoryVector, value float64) bool {
	if r, ok := t.index[v]; ok {
		r.Value = value
		return false
	}
	r := &Record{Vector: v, Value: value}
	t.records = append(t.records, r)
	t.index[v] = r
	return true
}

func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a snapshot of the table in insertion order.
func (t *Table) Records() []Record {
	records := make([]Record, len(t.records))
	for i, r := range t.records {
		records[i] = *r
	}
	return records
}

package leads

// Lead is one prospective recipient row from the uploaded table. Fields are
// trimmed at parse time and immutable afterwards; a lead is identified by
// its row position.
type Lead struct {
	Company  string `json:"company"`
	Website  string `json:"website"`
	Email    string `json:"email"`
	Keywords string `json:"keywords"`
	Name     string `json:"name"` // display name; defaults to Company
}

// Table is the immutable in-memory lead table for the duration of one
// upload. Rows keep their file order.
type Table struct {
	rows []Lead
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the lead at index i.
func (t *Table) Row(i int) (Lead, bool) {
	if t == nil || i < 0 || i >= len(t.rows) {
		return Lead{}, false
	}
	return t.rows[i], true
}

// Rows returns a copy of all rows.
func (t *Table) Rows() []Lead {
	if t == nil {
		return nil
	}
	out := make([]Lead, len(t.rows))
	copy(out, t.rows)
	return out
}

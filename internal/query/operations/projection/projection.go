package projection

// ColumnRef represents a column reference in a PRINT or JOIN column list.
// Side is 0 for single-table queries and 1 or 2 for the two join inputs.
type ColumnRef struct {
	Column string
	Side   int
}

// Projection is the ordered list of columns a query renders
type Projection struct {
	Columns []ColumnRef
}

// NewProjectionWithColumns creates a single-table projection for the named columns
func NewProjectionWithColumns(names ...string) *Projection {
	p := &Projection{Columns: make([]ColumnRef, len(names))}
	for i, name := range names {
		p.Columns[i] = ColumnRef{Column: name}
	}
	return p
}

// AddColumn appends a column reference
func (p *Projection) AddColumn(column string, side int) {
	p.Columns = append(p.Columns, ColumnRef{Column: column, Side: side})
}

// Names returns the header line: column names in projection order
func (p *Projection) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		names[i] = c.Column
	}
	return names
}

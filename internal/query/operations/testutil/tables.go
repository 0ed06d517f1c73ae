package testutil

import (
	"testing"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
)

// CreateTestTable creates a table from columns and raw rows.
// Rows go through the same parsing as INSERT data lines.
func CreateTestTable(t *testing.T, name string, columns []schema.Column, rows ...[]string) *schema.Table {
	t.Helper()

	s, err := schema.NewTableSchema(name, columns)
	if err != nil {
		t.Fatalf("schema for %s: %v", name, err)
	}
	table := schema.NewTable(s)

	table.Lock()
	defer table.Unlock()
	for i, tokens := range rows {
		row, err := table.ParseRow(tokens, i+1)
		if err != nil {
			t.Fatalf("row %d of %s: %v", i+1, name, err)
		}
		if _, err := table.AppendUnsafe(row); err != nil {
			t.Fatalf("row %d of %s: %v", i+1, name, err)
		}
	}
	return table
}

// CreateUsersTable creates a users table with sample data for testing
func CreateUsersTable(t *testing.T) *schema.Table {
	t.Helper()
	return CreateTestTable(t, "users",
		[]schema.Column{
			{Name: "id", Kind: value.KindInteger},
			{Name: "username", Kind: value.KindText},
			{Name: "active", Kind: value.KindBoolean},
		},
		[]string{"1", "alice", "true"},
		[]string{"2", "bob", "false"},
		[]string{"3", "charlie", "true"},
	)
}

// CreateOrdersTable creates an orders table with sample data for testing.
// user_id 3 (charlie) has no orders and user_id 4 has no user.
func CreateOrdersTable(t *testing.T) *schema.Table {
	t.Helper()
	return CreateTestTable(t, "orders",
		[]schema.Column{
			{Name: "id", Kind: value.KindInteger},
			{Name: "user_id", Kind: value.KindInteger},
			{Name: "product", Kind: value.KindText},
			{Name: "amount", Kind: value.KindReal},
		},
		[]string{"10", "1", "Laptop", "999.99"},
		[]string{"11", "2", "Keyboard", "75"},
		[]string{"12", "1", "Mouse", "25.5"},
		[]string{"13", "4", "Monitor", "180"},
		[]string{"14", "1", "Cable", "5"},
	)
}

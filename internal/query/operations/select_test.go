package operations_test

import (
	stderrors "errors"
	"slices"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/planner"
	"github.com/leengari/minisql/internal/planner/predicate"
	"github.com/leengari/minisql/internal/query/indexing"
	"github.com/leengari/minisql/internal/query/operations"
	"github.com/leengari/minisql/internal/query/operations/projection"
	"github.com/leengari/minisql/internal/query/operations/testutil"
)

func where(column, op, literal string) *predicate.Condition {
	return &predicate.Condition{Column: column, Op: op, Literal: literal}
}

// TestSelect_All tests that ALL returns every row in position order
func TestSelect_All(t *testing.T) {
	users := testutil.CreateUsersTable(t)

	res, err := operations.Select(users, projection.NewProjectionWithColumns("username", "id"), nil)
	assert.NilError(t, err)
	assert.DeepEqual(t, res.Columns, []string{"username", "id"})
	assert.DeepEqual(t, res.Positions, []int{0, 1, 2})
	testutil.AssertRows(t, res.Rows, []string{"alice 1", "bob 2", "charlie 3"}, "select all")
}

// TestSelect_NilProjection tests that a nil projection keeps every column
func TestSelect_NilProjection(t *testing.T) {
	users := testutil.CreateUsersTable(t)

	res, err := operations.Select(users, nil, where("id", "=", "2"))
	assert.NilError(t, err)
	assert.DeepEqual(t, res.Columns, []string{"id", "username", "active"})
	testutil.AssertRows(t, res.Rows, []string{"2 bob false"}, "select id=2")
}

// TestSelect_AccessPaths tests that each index kind is used where it applies
// and that the rows come back in the documented order
func TestSelect_AccessPaths(t *testing.T) {
	tests := []struct {
		name  string
		index string // "", "hash" or "bst" on amount
		cond  *predicate.Condition
		path  planner.AccessPath
		rows  []string
	}{
		{"scan less", "", where("amount", "<", "100"), planner.PathFullScan, []string{"Keyboard", "Mouse", "Cable"}},
		{"scan equal", "", where("amount", "=", "75"), planner.PathFullScan, []string{"Keyboard"}},
		{"hash equal", "hash", where("amount", "=", "75"), planner.PathHashLookup, []string{"Keyboard"}},
		{"hash cannot range", "hash", where("amount", ">", "100"), planner.PathFullScan, []string{"Laptop", "Monitor"}},
		{"bst equal", "bst", where("amount", "=", "25.5"), planner.PathOrderedLookup, []string{"Mouse"}},
		{"bst less", "bst", where("amount", "<", "100"), planner.PathOrderedRange, []string{"Cable", "Mouse", "Keyboard"}},
		{"bst greater", "bst", where("amount", ">", "75"), planner.PathOrderedRange, []string{"Monitor", "Laptop"}},
		{"bst miss", "bst", where("amount", "=", "1"), planner.PathOrderedLookup, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := testutil.CreateOrdersTable(t)
			if tt.index != "" {
				_, err := indexing.Generate(orders, "amount", tt.index)
				assert.NilError(t, err)
			}

			res, err := operations.Select(orders, projection.NewProjectionWithColumns("product"), tt.cond)
			assert.NilError(t, err)
			assert.Equal(t, res.Path, tt.path, "path %s", res.Path)
			testutil.AssertRows(t, res.Rows, tt.rows, tt.name)
			assert.Equal(t, res.Count(), len(tt.rows))
		})
	}
}

// TestSelect_SameMatchesWithOrWithoutIndex tests that indexes never change the match set
func TestSelect_SameMatchesWithOrWithoutIndex(t *testing.T) {
	conds := []*predicate.Condition{
		where("user_id", "=", "1"),
		where("user_id", "<", "2"),
		where("user_id", ">", "1"),
		where("user_id", "=", "3"),
	}

	for _, kind := range []string{"hash", "bst"} {
		plain := testutil.CreateOrdersTable(t)
		indexed := testutil.CreateOrdersTable(t)
		_, err := indexing.Generate(indexed, "user_id", kind)
		assert.NilError(t, err)

		for _, cond := range conds {
			want, err := operations.Select(plain, nil, cond)
			assert.NilError(t, err)
			got, err := operations.Select(indexed, nil, cond)
			assert.NilError(t, err)

			assert.DeepEqual(t, sorted(got.Positions), sorted(want.Positions))
		}
	}
}

// TestSelect_ResultDoesNotAliasIndex tests that callers may keep or modify results
func TestSelect_ResultDoesNotAliasIndex(t *testing.T) {
	orders := testutil.CreateOrdersTable(t)
	idx, err := indexing.Generate(orders, "user_id", "hash")
	assert.NilError(t, err)

	res, err := operations.Select(orders, nil, where("user_id", "=", "1"))
	assert.NilError(t, err)
	res.Positions[0] = 99

	assert.DeepEqual(t, idx.Lookup(orders.Rows[0][1]), []int{0, 2, 4})
}

// TestSelect_Errors tests validation order and error kinds
func TestSelect_Errors(t *testing.T) {
	users := testutil.CreateUsersTable(t)

	tests := []struct {
		name     string
		proj     *projection.Projection
		cond     *predicate.Condition
		sentinel error
		message  string
	}{
		{"operator first", projection.NewProjectionWithColumns("nope"), where("nope", "!", "1"), errors.ErrInvalidOperator, "Invalid comparison operator '!'"},
		{"filter column", projection.NewProjectionWithColumns("nope"), where("age", "=", "1"), errors.ErrUnknownColumn, "age does not name a column in users"},
		{"literal", projection.NewProjectionWithColumns("id"), where("active", "=", "yes"), errors.ErrInvalidLiteral, "Invalid value for column active"},
		{"projection", projection.NewProjectionWithColumns("id", "email"), where("id", ">", "0"), errors.ErrUnknownColumn, "email does not name a column in users"},
		{"projection without filter", projection.NewProjectionWithColumns("email"), nil, errors.ErrUnknownColumn, "email does not name a column in users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := operations.Select(users, tt.proj, tt.cond)
			assert.Assert(t, stderrors.Is(err, tt.sentinel))
			assert.Error(t, err, tt.message)
		})
	}
}

func sorted(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}

package schema

import (
	"sort"
	"sync"

	"github.com/leengari/minisql/internal/domain/errors"
)

// Database owns every table of a session, keyed by name
type Database struct {
	mu     sync.RWMutex
	Tables map[string]*Table
}

func NewDatabase() *Database {
	return &Database{Tables: make(map[string]*Table)}
}

// CreateTable registers an empty table for the schema
func (db *Database) CreateTable(s *TableSchema) (*Table, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.Tables[s.TableName]; exists {
		return nil, &errors.TableExistsError{TableName: s.TableName}
	}
	t := NewTable(s)
	db.Tables[s.TableName] = t
	return t, nil
}

// GetTable resolves a table by name
func (db *Database) GetTable(name string) (*Table, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, ok := db.Tables[name]
	if !ok {
		return nil, &errors.TableNotFoundError{TableName: name}
	}
	return t, nil
}

// DropTable removes a table and everything it owns
func (db *Database) DropTable(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.Tables[name]; !ok {
		return &errors.TableNotFoundError{TableName: name}
	}
	delete(db.Tables, name)
	return nil
}

// TableNames returns all table names sorted
func (db *Database) TableNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	names := make([]string, 0, len(db.Tables))
	for name := range db.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

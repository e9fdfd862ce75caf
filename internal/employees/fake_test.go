package employees_test

import (
	"context"
	"errors"
	"sync"

	"github.com/JaimeStill/employee-portal/internal/employees"
)

// memoryStore is an in-process Store with the same id and language rules as
// the database stores.
type memoryStore struct {
	mu      sync.Mutex
	rows    []employees.Employee
	inserts []employees.CreateCommand
	err     error
}

func (s *memoryStore) Insert(ctx context.Context, cmd employees.CreateCommand) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return 0, s.err
	}

	id := len(s.rows) + 1
	e := employees.Employee{ID: id, Name: cmd.Name, Department: cmd.Department}
	if cmd.Role == employees.RoleDeveloper || cmd.Role == employees.RoleTester {
		e.Language = cmd.Language
	}
	s.rows = append(s.rows, e)
	s.inserts = append(s.inserts, cmd)
	return id, nil
}

func (s *memoryStore) List(ctx context.Context) ([]employees.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	return append([]employees.Employee(nil), s.rows...), nil
}

var errUnavailable = errors.New("store unavailable")

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/employee-portal/internal/employees"
)

const defaultEmployeeSeed = "seeds/employees.json"

func init() {
	registerSeeder(&EmployeeSeeder{})
}

// applySeedFile points the registered employee seeder at path, whichever of
// -all or -employees runs it.
func applySeedFile(path string) {
	if seeder, ok := getSeeder("employees"); ok {
		seeder.(*EmployeeSeeder).SetFile(path)
	}
}

// EmployeeSeedData is the JSON layout of an employee seed file.
type EmployeeSeedData struct {
	Employees []employees.CreateCommand `json:"employees"`
}

// EmployeeSeeder creates employees from an embedded file or an external path.
// Every run creates new records; ids are never reused.
type EmployeeSeeder struct {
	file string
}

func (s *EmployeeSeeder) Name() string {
	return "employees"
}

func (s *EmployeeSeeder) Description() string {
	return "Seeds sample developers and testers"
}

// SetFile overrides the embedded seed file.
func (s *EmployeeSeeder) SetFile(path string) {
	s.file = path
}

func (s *EmployeeSeeder) Seed(ctx context.Context, sys employees.System) (int, error) {
	data, err := s.loadSeedData()
	if err != nil {
		return 0, err
	}

	for i, cmd := range data.Employees {
		if _, err := sys.Create(ctx, cmd); err != nil {
			return i, fmt.Errorf("create employee %q: %w", cmd.Name, err)
		}
	}
	return len(data.Employees), nil
}

func (s *EmployeeSeeder) loadSeedData() (*EmployeeSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile(defaultEmployeeSeed)
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data EmployeeSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

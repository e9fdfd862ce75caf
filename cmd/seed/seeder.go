// Package main provides the seed command for populating the configured store
// with sample employees. Seeders write through the employees system so the
// same seed data works for either storage driver.
package main

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/JaimeStill/employee-portal/internal/employees"
)

//go:embed seeds/*.json
var seedFiles embed.FS

// Seeder populates one domain's data.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, sys employees.System) (int, error)
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the registry. Seeders self-register via init.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// runSeeder executes a single seeder by name and returns the records written.
func runSeeder(ctx context.Context, sys employees.System, name string) (int, error) {
	seeder, ok := getSeeder(name)
	if !ok {
		return 0, fmt.Errorf("seeder not found: %s", name)
	}

	n, err := seeder.Seed(ctx, sys)
	if err != nil {
		return n, fmt.Errorf("seed %s: %w", name, err)
	}
	return n, nil
}

// runAllSeeders executes every registered seeder in name order, stopping at
// the first failure.
func runAllSeeders(ctx context.Context, sys employees.System) (int, error) {
	total := 0
	for _, s := range listSeeders() {
		n, err := runSeeder(ctx, sys, s.Name())
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

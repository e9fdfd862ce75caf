package employees_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/employee-portal/internal/employees"
	"github.com/JaimeStill/employee-portal/internal/migrations"
	"github.com/JaimeStill/employee-portal/pkg/database"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store tests run against live servers named by these variables and skip otherwise.
const (
	envTestPostgresDSN = "EMPLOYEE_PORTAL_TEST_POSTGRES_DSN"
	envTestMongoURI    = "EMPLOYEE_PORTAL_TEST_MONGO_URI"
)

func postgresStore(t *testing.T) employees.Store {
	t.Helper()

	dsn := os.Getenv(envTestPostgresDSN)
	if dsn == "" {
		t.Skipf("%s not set", envTestPostgresDSN)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m, err := database.NewMigrator(db, migrations.FS, migrations.Dir, discard())
	if err != nil {
		t.Fatalf("NewMigrator() error = %v", err)
	}
	if err := m.Up(); err != nil {
		t.Fatalf("Up() error = %v", err)
	}

	if _, err := db.Exec(`TRUNCATE employees RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return employees.NewPostgresStore(db)
}

func mongoStore(t *testing.T) employees.Store {
	t.Helper()

	uri := os.Getenv(envTestMongoURI)
	if uri == "" {
		t.Skipf("%s not set", envTestMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	db := client.Database("employee_portal_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		db.Drop(context.Background())
		client.Disconnect(context.Background())
	})
	return employees.NewMongoStore(db)
}

func TestStores(t *testing.T) {
	stores := map[string]func(*testing.T) employees.Store{
		"postgres": postgresStore,
		"mongo":    mongoStore,
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			cmds := []employees.CreateCommand{
				{Name: "Ada", Department: "Engineering", Language: "Go", Role: employees.RoleDeveloper},
				{Name: "Tess", Department: "QA", Language: "Python", Role: employees.RoleTester},
				{Name: "Lin", Department: "Design", Language: "Figma", Role: "designer"},
			}
			for i, cmd := range cmds {
				id, err := store.Insert(ctx, cmd)
				if err != nil {
					t.Fatalf("Insert(%s) error = %v", cmd.Name, err)
				}
				if id != i+1 {
					t.Errorf("Insert(%s) id = %d, want %d", cmd.Name, id, i+1)
				}
			}

			got, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}

			want := []employees.Employee{
				{ID: 1, Name: "Ada", Department: "Engineering", Language: "Go"},
				{ID: 2, Name: "Tess", Department: "QA", Language: "Python"},
				{ID: 3, Name: "Lin", Department: "Design", Language: ""},
			}
			if len(got) != len(want) {
				t.Fatalf("len(List()) = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

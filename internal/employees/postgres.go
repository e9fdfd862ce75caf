package employees

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/employee-portal/pkg/repository"
)

const listEmployeesSQL = `
	SELECT
		e.id,
		e.name,
		COALESCE((SELECT d.name FROM departments d WHERE d.emp_id = e.id LIMIT 1), '') AS department,
		COALESCE(
			NULLIF((SELECT dv.language FROM developers dv WHERE dv.emp_id = e.id LIMIT 1), ''),
			(SELECT t.language FROM testers t WHERE t.emp_id = e.id LIMIT 1),
			''
		) AS language
	FROM employees e
	ORDER BY e.id`

const insertEmployeeSQL = `INSERT INTO employees(name) VALUES ($1) RETURNING id`

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore stores employees in the tables created by internal/migrations.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Insert(ctx context.Context, cmd CreateCommand) (int, error) {
	return repository.WithTx(ctx, s.db, func(tx *sql.Tx) (int, error) {
		id, err := repository.QueryOne(ctx, tx, insertEmployeeSQL, []any{cmd.Name}, scanID)
		if err != nil {
			return 0, fmt.Errorf("insert employee: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO departments(name, emp_id) VALUES ($1, $2)`,
			cmd.Department, id,
		); err != nil {
			return 0, fmt.Errorf("insert department: %w", err)
		}

		if table, ok := languageTable(cmd.Role); ok {
			q := fmt.Sprintf(`INSERT INTO %s(language, emp_id) VALUES ($1, $2)`, table)
			if _, err := tx.ExecContext(ctx, q, cmd.Language, id); err != nil {
				return 0, fmt.Errorf("insert %s: %w", cmd.Role, err)
			}
		}

		return id, nil
	})
}

func (s *postgresStore) List(ctx context.Context) ([]Employee, error) {
	return repository.QueryMany(ctx, s.db, listEmployeesSQL, nil, scanEmployee)
}

func scanEmployee(s repository.Scanner) (Employee, error) {
	var e Employee
	err := s.Scan(&e.ID, &e.Name, &e.Department, &e.Language)
	return e, err
}

func scanID(s repository.Scanner) (int, error) {
	var id int
	err := s.Scan(&id)
	return id, err
}

// languageTable names the table holding the language for role. The names
// are fixed identifiers, never user input.
func languageTable(role Role) (string, bool) {
	switch role {
	case RoleDeveloper:
		return "developers", true
	case RoleTester:
		return "testers", true
	default:
		return "", false
	}
}

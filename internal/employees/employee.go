// Package employees creates and lists company employees. An employee belongs
// to one department and, for developers and testers, records a language.
package employees

// Role selects which language table receives the employee's language.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleTester    Role = "tester"
)

// Employee is a listed employee joined with its department and language.
type Employee struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Language   string `json:"language"`
}

// CreateCommand contains the data needed to create an employee. Roles other
// than developer and tester are accepted and store no language.
type CreateCommand struct {
	Name       string `json:"name" validate:"required,text,max=200"`
	Department string `json:"department" validate:"required,text,max=200"`
	Language   string `json:"language" validate:"text,max=100"`
	Role       Role   `json:"role" validate:"required,text,max=50"`
}

// Created is the response body for a successful create.
type Created struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

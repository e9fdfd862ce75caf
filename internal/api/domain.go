package api

import (
	"github.com/JaimeStill/employee-portal/internal/employees"
	"github.com/JaimeStill/employee-portal/internal/infrastructure"
)

// Domain holds the domain systems shared by the API and page modules.
type Domain struct {
	Employees employees.System
}

// NewDomain builds the domain systems over the store infra was configured with.
func NewDomain(infra *infrastructure.Infrastructure) *Domain {
	var store employees.Store
	if infra.Mongo != nil {
		store = employees.NewMongoStore(infra.Mongo.Database())
	} else {
		store = employees.NewPostgresStore(infra.Database.Connection())
	}

	return &Domain{
		Employees: employees.New(store, infra.Logger),
	}
}

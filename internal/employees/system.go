package employees

import (
	"context"
	"fmt"
	"log/slog"
)

// System defines the employee operations exposed to handlers and pages.
type System interface {
	// Create validates cmd, stores the employee, and returns its id.
	Create(ctx context.Context, cmd CreateCommand) (Created, error)

	// List returns every employee ordered by id.
	List(ctx context.Context) ([]Employee, error)
}

// Store persists employees. Insert receives an already validated command.
type Store interface {
	Insert(ctx context.Context, cmd CreateCommand) (int, error)
	List(ctx context.Context) ([]Employee, error)
}

type system struct {
	store     Store
	validator *commandValidator
	logger    *slog.Logger
}

func New(store Store, logger *slog.Logger) System {
	return &system{
		store:     store,
		validator: newCommandValidator(),
		logger:    logger.With("system", "employees"),
	}
}

func (s *system) Create(ctx context.Context, cmd CreateCommand) (Created, error) {
	cmd, err := s.validator.prepare(cmd)
	if err != nil {
		return Created{}, err
	}

	id, err := s.store.Insert(ctx, cmd)
	if err != nil {
		return Created{}, fmt.Errorf("%w: insert: %v", ErrStore, err)
	}

	s.logger.Info("employee created", "id", id, "department", cmd.Department, "role", cmd.Role)
	return Created{Message: "inserted", ID: id}, nil
}

func (s *system) List(ctx context.Context) ([]Employee, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStore, err)
	}
	if list == nil {
		list = []Employee{}
	}
	return list, nil
}

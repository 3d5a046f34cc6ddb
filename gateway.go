package hackbright

import (
	"context"
	"fmt"
)

// Gateway is the persistence contract of the command loop. Lookups return
// ErrNotFound when no row matches.
type Gateway interface {
	FindStudent(ctx context.Context, github string) (*Student, error)
	InsertStudent(ctx context.Context, s Student) error
	FindProject(ctx context.Context, title string) (*Project, error)
	FindGrade(ctx context.Context, github, title string) (*Grade, error)
	InsertGrade(ctx context.Context, g Grade) error
	Close() error
}

// OpenGateway opens the store named by cfg.Driver. SQL stores get the
// bootstrap schema applied when cfg.InitSchema is set.
func OpenGateway(ctx context.Context, cfg *Config) (Gateway, error) {
	if cfg.Driver == MemoryDriver {
		return NewMemoryGateway(), nil
	}

	sg, err := OpenSQLGateway(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.InitSchema {
		err = sg.InitSchema(ctx)
		if err != nil {
			sg.Close()
			return nil, fmt.Errorf("Error initializing schema: %w", err)
		}
	}

	return sg, nil
}

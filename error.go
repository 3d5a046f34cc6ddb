package hackbright

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("No matching row")
	// ErrInvalidEntry is returned when the command token is not recognized
	ErrInvalidEntry = errors.New("Invalid entry")
	// ErrInvalidArguments is returned when a command gets the wrong number of arguments
	ErrInvalidArguments = errors.New("Invalid arguments")
	// ErrStoreUnavailable is returned when the store cannot be opened or reached
	ErrStoreUnavailable = errors.New("Store unavailable")
	ErrDuplicate        = errors.New("Duplicate key value violates unique constraint")
	ErrForeignKey       = errors.New("Value violates foreign key constraint")
	ErrUnknownDriver    = errors.New("Unknown driver")
	ErrInvalidConfig    = errors.New("Invalid configuration")
)

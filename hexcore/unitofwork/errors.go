package unitofwork

import "errors"

var (
	// ErrTransactionAlreadyActive indicates Begin was called inside an active transaction.
	ErrTransactionAlreadyActive = errors.New("transaction already active")
	// ErrNoActiveTransaction indicates a lifecycle or registration call outside a transaction.
	ErrNoActiveTransaction = errors.New("no active transaction")
	// ErrUnitOfWorkRequired indicates a nil unit of work.
	ErrUnitOfWorkRequired = errors.New("unit of work is required")
	// ErrWorkRequired indicates a nil work function passed to a transactional scope.
	ErrWorkRequired = errors.New("work function is required")
	// ErrEntityRequired indicates a nil entity passed to a register call.
	ErrEntityRequired = errors.New("entity is required")
)

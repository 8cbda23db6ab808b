package unitofwork

import (
	"context"
	"errors"

	"github.com/hexforge/lib-hexcore/hexcore/internal/nilcheck"
)

// UnitOfWork is the transactional change tracker port consumed by
// application use-cases.
//
// Implementations are not safe for concurrent mutation from multiple
// callers: one transactional scope owns one instance at a time. Callers
// sharing an instance across goroutines must serialize access externally.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	InTransaction() bool
	RegisterNew(entity any) error
	RegisterDirty(entity any) error
	RegisterDeleted(entity any) error
	NewEntities() []any
	DirtyEntities() []any
	DeletedEntities() []any
	WithTransaction(ctx context.Context, work func(context.Context) error) error
}

// InMemory is the in-memory UnitOfWork adapter. It records mutation intents
// without persisting anything; Commit clears the buckets and callers are
// expected to have materialized effects from the bucket snapshots first.
type InMemory struct {
	active  bool
	new     []any
	dirty   []any
	deleted []any
}

var _ UnitOfWork = (*InMemory)(nil)

// NewInMemory creates an in-memory unit of work with no active transaction.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Begin transitions the unit of work into an active transaction.
func (uow *InMemory) Begin(_ context.Context) error {
	if uow == nil {
		return ErrUnitOfWorkRequired
	}

	if uow.active {
		return ErrTransactionAlreadyActive
	}

	uow.active = true

	return nil
}

// Commit clears all tracked intents and closes the transaction.
func (uow *InMemory) Commit(_ context.Context) error {
	if uow == nil {
		return ErrUnitOfWorkRequired
	}

	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.clear()
	uow.active = false

	return nil
}

// Rollback discards all tracked intents and closes the transaction.
func (uow *InMemory) Rollback(_ context.Context) error {
	if uow == nil {
		return ErrUnitOfWorkRequired
	}

	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.clear()
	uow.active = false

	return nil
}

// InTransaction reports whether a transaction is currently active.
func (uow *InMemory) InTransaction() bool {
	return uow != nil && uow.active
}

// RegisterNew tracks entity as a pending insert. A new registration
// supersedes prior dirty or delete intents for the same entity.
func (uow *InMemory) RegisterNew(entity any) error {
	if err := uow.checkRegister(entity); err != nil {
		return err
	}

	uow.dirty = removeEntity(uow.dirty, entity)
	uow.deleted = removeEntity(uow.deleted, entity)

	if !containsEntity(uow.new, entity) {
		uow.new = append(uow.new, entity)
	}

	return nil
}

// RegisterDirty tracks entity as a pending modification. Entities already
// registered as new are left untouched: a not-yet-persisted insert needs no
// separate modification intent.
func (uow *InMemory) RegisterDirty(entity any) error {
	if err := uow.checkRegister(entity); err != nil {
		return err
	}

	if containsEntity(uow.new, entity) {
		return nil
	}

	uow.deleted = removeEntity(uow.deleted, entity)

	if !containsEntity(uow.dirty, entity) {
		uow.dirty = append(uow.dirty, entity)
	}

	return nil
}

// RegisterDeleted tracks entity as a pending delete, superseding any pending
// insert or modification for the same entity.
func (uow *InMemory) RegisterDeleted(entity any) error {
	if err := uow.checkRegister(entity); err != nil {
		return err
	}

	uow.new = removeEntity(uow.new, entity)
	uow.dirty = removeEntity(uow.dirty, entity)

	if !containsEntity(uow.deleted, entity) {
		uow.deleted = append(uow.deleted, entity)
	}

	return nil
}

// NewEntities returns a snapshot of entities registered as new, in
// registration order. Never fails; the snapshot is detached from internal state.
func (uow *InMemory) NewEntities() []any {
	if uow == nil {
		return nil
	}

	return snapshot(uow.new)
}

// DirtyEntities returns a snapshot of entities registered as dirty.
func (uow *InMemory) DirtyEntities() []any {
	if uow == nil {
		return nil
	}

	return snapshot(uow.dirty)
}

// DeletedEntities returns a snapshot of entities registered for deletion.
func (uow *InMemory) DeletedEntities() []any {
	if uow == nil {
		return nil
	}

	return snapshot(uow.deleted)
}

// WithTransaction begins a transaction, invokes work, commits on normal
// return and rolls back when work fails or panics. The transaction is closed
// on every exit path; a panic is re-raised after rollback and a work error
// propagates to the caller.
func (uow *InMemory) WithTransaction(ctx context.Context, work func(context.Context) error) error {
	if uow == nil {
		return ErrUnitOfWorkRequired
	}

	if work == nil {
		return ErrWorkRequired
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			_ = uow.Rollback(ctx)

			panic(recovered)
		}
	}()

	if err := work(ctx); err != nil {
		if rollbackErr := uow.Rollback(ctx); rollbackErr != nil {
			return errors.Join(err, rollbackErr)
		}

		return err
	}

	return uow.Commit(ctx)
}

// Execute runs work inside a transactional scope on uow and returns its
// typed result. Commit and rollback semantics follow WithTransaction.
func Execute[T any](ctx context.Context, uow UnitOfWork, work func(context.Context) (T, error)) (T, error) {
	var result T

	if nilcheck.Interface(uow) {
		return result, ErrUnitOfWorkRequired
	}

	if work == nil {
		return result, ErrWorkRequired
	}

	err := uow.WithTransaction(ctx, func(ctx context.Context) error {
		var workErr error
		result, workErr = work(ctx)

		return workErr
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return result, nil
}

func (uow *InMemory) checkRegister(entity any) error {
	if uow == nil {
		return ErrUnitOfWorkRequired
	}

	if !uow.active {
		return ErrNoActiveTransaction
	}

	if nilcheck.Interface(entity) {
		return ErrEntityRequired
	}

	return nil
}

func (uow *InMemory) clear() {
	uow.new = nil
	uow.dirty = nil
	uow.deleted = nil
}

func snapshot(bucket []any) []any {
	if len(bucket) == 0 {
		return nil
	}

	copied := make([]any, len(bucket))
	copy(copied, bucket)

	return copied
}

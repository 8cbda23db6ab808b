// Package unitofwork provides a transactional change tracker for hexagonal
// application layers.
//
// A UnitOfWork batches pending entity mutations into three mutually exclusive
// buckets (new, dirty, deleted) for coordinated commit or discard. The
// InMemory adapter tracks intents only; persistence-backed adapters can
// implement the same port and materialize the buckets on commit.
//
// Registration rules keep the buckets mutually exclusive by construction:
// a "new" registration supersedes prior dirty/delete intents, a "dirty"
// registration on a not-yet-persisted entity is a no-op, and a "deleted"
// registration supersedes pending inserts and modifications. An adapter
// iterating new, dirty, then deleted therefore sees each entity at most once.
package unitofwork

// Package taskset runs a set of goroutines and joins them, collecting every
// error instead of only the first.
//
// Unlike errgroup-style groups, a failing or panicking task does not cancel
// its siblings: each task runs to completion and Wait returns the full list
// of failures in completion order. This is the primitive behind isolated
// fan-out dispatch, where one misbehaving participant must not affect the
// others.
package taskset

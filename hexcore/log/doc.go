// Package log defines the structured logging port used across hexcore.
//
// The Logger interface is deliberately strict: leveled structured entries
// only, no printf or fatal helpers. Backends live elsewhere; the zap
// subpackage provides the production implementation and NewNop returns a
// logger that drops everything.
package log

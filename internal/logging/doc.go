// Package logging provides structured logging for vlist built on zerolog.
//
// Loggers are created from a Config (level, format, output), tagged per
// component with ComponentLogger, and carried through a context.Context
// together with a ULID trace id so one interactive session can be followed
// across packages.
package logging

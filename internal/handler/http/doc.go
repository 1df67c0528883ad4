// Package http implements the loopback HTTP bridge between the shell and
// the offline core.
//
// Every route delegates to [service.BoundaryService] and answers with its
// JSON envelope. The envelope status is authoritative; the HTTP status code
// mirrors the error kind for clients that only look at the status line.
package http

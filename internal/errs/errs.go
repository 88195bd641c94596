// Package errs defines the error types returned to API clients.
//
// Every handled failure in the service is eventually expressed as an
// *HTTPError, so clients always receive the same JSON shape: a machine
// readable code, a human readable detail message, the HTTP status, and
// optional field-level errors for validation failures.
package errs

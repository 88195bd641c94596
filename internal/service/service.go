// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from handlers, owns transaction boundaries, and maps
// absent rows to not-found errors before results travel back up.
package service

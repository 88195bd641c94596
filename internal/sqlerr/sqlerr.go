// Package sqlerr classifies database driver errors.
//
// It parses cryptic SQLSTATE codes coming out of the Postgres driver and
// converts them into client-facing errs.HTTPError values, e.g. turning a
// unique violation on items.title into a 400 with the code
// ITEM_ALREADY_EXISTS and a readable message.
package sqlerr

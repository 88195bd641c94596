// Package repository handles all interactions with the database.
//
// It contains the SQL queries and methods to fetch, persist, update, and
// delete data, abstracting SQL away from the service layer. Every method
// takes an explicit Querier store handle so the same operation can run
// against the shared pool or inside a transaction.
package repository

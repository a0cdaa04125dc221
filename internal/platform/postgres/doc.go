// Package postgres implements the store interfaces on PostgreSQL via
// database/sql and the pgx stdlib driver.
package postgres

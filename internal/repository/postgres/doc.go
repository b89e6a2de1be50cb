// Package postgres opens the shared Postgres pool used by the user and
// contact repositories and bootstraps the schema they expect.
package postgres

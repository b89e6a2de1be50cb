// Package common holds helpers shared by several services.
//
// It provides a gRPC client for the StatusService that attaches the session
// token and a per-call timeout to every request.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

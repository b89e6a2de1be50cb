// Package version exposes build metadata of the panic-button binaries.
//
// Version, Commit and BuildTime are set with -ldflags "-X" at build time:
//
//	go build -ldflags "-X github.com/oshokin/panic-button/internal/version.Version=1.2.0" ./cmd/...
package version

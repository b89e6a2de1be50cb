// Package integration holds end-to-end tests that run the real server
// in-process and talk to it through the client.
package integration

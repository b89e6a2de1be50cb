// Package client implements the panic-button commands.
//
// Each command loads the settings, connects to the panic server with the
// session token and prints the answer for the user.
package client

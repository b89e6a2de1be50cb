// Package alert contains the core domain types of the panic button.
//
// It defines the user-facing status values, the optional location snapshot,
// contacts, the composed message with its map link, per-contact delivery
// outcomes and the consolidated result of one status change, plus the error
// taxonomy shared by stores, services and transports.
package alert

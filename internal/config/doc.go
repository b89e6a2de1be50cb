// Package config defines the settings shared by the panic-button binaries and
// provides helpers to load, validate and save them in YAML format.
//
// References of the form ${NAME} are expanded from the environment when a file
// is loaded, so secrets such as the Twilio auth token stay out of the file.
package config

// Package status implements the gRPC transport of the panic button.
//
// It serves the generated panicbutton.v1.StatusService. Callers authenticate
// with an "authorization: Bearer <token>" metadata entry that the auth
// interceptor resolves into an identity, which handlers pass explicitly to the
// service.
package status

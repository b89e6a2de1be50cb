// Package server runs the panic-button server process.
//
// Run loads the settings, opens the stores, the session store and the
// messaging channel, then serves the StatusService over gRPC and the
// operational endpoints over HTTP until the context is canceled.
package server

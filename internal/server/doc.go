// Package server runs an HTTP handler with signal handling and graceful
// shutdown. The fake backend binary uses it to serve the chat API locally.
package server

// Package api contains the HTTP request/response adapters: request DTOs,
// handlers, and the single mapping point from internal errors to HTTP
// status codes and client-safe messages.
package api

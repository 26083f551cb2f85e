// Package client contains the transport layer of the diary CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     account management, interviews and the numbered diary pages.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrInvalidInput,
// ErrAlreadyExists. The server message is kept in the wrapped error text.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use; tokens are guarded by a mutex.
// All network operations accept context.Context and honor cancellation.
package client

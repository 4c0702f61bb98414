// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote record store.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAdapter]) covering the two collaborator
// endpoints the engine consumes: the paginated priming notification feed and
// the bounded query facility.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. [ErrMalformedResponse] marks parse faults: the request
// itself succeeded but the response could not be decoded into the expected
// shape. Callers rely on that distinction to tell "server unreachable" apart
// from "server returned something this version doesn't understand"; neither
// kind is retried here.
package adapter

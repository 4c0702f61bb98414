// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the briefcase sync-down target: the engine that
// reconciles the local record cache with the remote store for several record
// types in one coordinated pass.
//
// An incremental run drives the priming notification feed one page at a
// time. Each page reports which record identifiers changed, grouped by
// record type; identifiers newer than the run's watermark are fetched in
// slice-bounded queries and the resulting records are routed into their
// per-type destinations inside one cache transaction. Cursor state lives in
// a [models.RunState] value passed into and returned from every call, so a
// run's state is never shared with a concurrent run and a failed call
// leaves the previous state intact.
//
// A ghost-cleanup pass instead drives the feed to exhaustion with no
// watermark, computes the complete remote identifier set per type, and
// deletes local non-pending records that no longer exist remotely.
//
// All network calls within a run are strictly sequential. The only
// cancellation point is the admission [Gate], consulted before every slice
// request, so a suspension takes effect between slices.
package service

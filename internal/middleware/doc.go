// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package middleware provides HTTP instrumentation middleware for the chi
router.

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by the matched chi route pattern ("/id/{id}") so record ids never become
    label values
  - AccessLog: one structured zerolog line per request, with request and
    correlation ids from the context, escalated to a warning for slow
    requests and server errors

Both wrap the ResponseWriter with chi's WrapResponseWriter to read the
final status code. They are safe for concurrent use.

Usage:

	r.Use(middleware.AccessLog(time.Second))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware

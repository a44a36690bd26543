// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package metrics provides Prometheus metrics collection for the Balades API.

Collectors are registered on the default registry with promauto and exposed
at /metrics:

	curl http://localhost:1235/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Record store:
  - store_operation_duration_seconds{operation,backend}
  - store_operation_errors_total{operation,backend,error_type}
  - balades_renamed_total (records touched by bulk rename)

Circuit breakers:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Change events:
  - events_published_total{topic,result}
  - events_consumed_total{topic}

Endpoint labels use the chi route pattern (/id/{id}), never the raw path, so
label cardinality stays bounded.
*/
package metrics

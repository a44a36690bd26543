// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package services adapts balades components to suture.Service.

Each wrapper turns a component's own lifecycle into Serve(ctx) error:

  - HTTPServerService: ListenAndServe plus graceful Shutdown on cancel.
  - NATSServerService: watches an embedded nats-server and shuts it down on cancel.
  - StoreMonitorService: periodic store ping feeding the store_up gauge.

Services that already implement Serve, such as events.AuditConsumer, are
added to the tree directly.
*/
package services

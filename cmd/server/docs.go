// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

// @title Balades API
// @version 1.0
// @description Walking tour points of interest (balades) in Paris.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "code": "NOT_FOUND",
// @description   "message": "Balade not found",
// @description   "request_id": "0f8fad5b-d9cb-469f-a165-70867728950e"
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default: 100 requests per minute per IP, 30 per minute for write routes.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/balades/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:1235
// @BasePath /
// @schemes http https
//
// @tag.name Balades
// @tag.description Query and mutation endpoints for points of interest
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main

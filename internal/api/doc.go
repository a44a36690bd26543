// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package api provides the HTTP layer of the balades service.

Routes are served by a chi router built in Router.Setup:

Domain routes (rate limited, security headers, metrics, access log):

	GET    /                      greeting, the JSON string "Bonjour"
	GET    /all                   every record
	GET    /id/{id}               one record, as {"reponse": record}
	GET    /search/{search}       regex search on nom_poi or texte_intro
	GET    /site-internet         records with a url_site
	GET    /mot-cle               records with exactly five keywords
	GET    /publie/{annee}        records entered in a year, oldest first
	GET    /arrondissement/{num}  {"count": n} for a postal code
	GET    /synthese              [{"_id": code, "count": n}] per postal code
	GET    /categories            distinct categories
	POST   /add                   create a record
	PUT    /add-mot-cle/{id}      append one keyword
	PUT    /update-one/{id}       partial update, returns the record
	PUT    /update-many/{search}  rename every record whose texte_description matches
	DELETE /delete/{id}           delete a record

Write routes get a stricter per-IP rate limit than read routes.

Operational routes:

	GET /health/live    liveness
	GET /health/ready   readiness, pings the store
	GET /metrics        Prometheus exposition
	GET /swagger/*      Swagger UI

Error handling:

Handlers never build error responses themselves. They pass the error
returned by the service to writeServiceError, which maps the models
sentinels to a status code and an ErrorResponse:

	models.ErrInvalidID         400 INVALID_ID
	models.ErrValidation        400 VALIDATION_FAILED
	malformed request body      400 BAD_REQUEST
	models.ErrNotFound          404 NOT_FOUND
	models.ErrDuplicateKeyword  409 CONFLICT
	anything else               500 DATABASE_ERROR

5xx causes are logged with the request id and replaced by a generic
message. Panics are recovered into 500 INTERNAL_ERROR and rate limited
clients receive 429 TOO_MANY_REQUESTS, both with the same body shape.

Request bodies are decoded with goccy/go-json into explicit structs.
Unknown fields, trailing data and bodies over 1 MiB are rejected.
*/
package api

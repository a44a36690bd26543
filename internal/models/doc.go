// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package models defines the data structures shared by every layer of the
Balades API.

The single persisted entity is Balade, a point of interest of a walking tour.
Its JSON field names are French and are part of the public wire contract:

	{
	  "_id": "65a1f0c2e4b0a1b2c3d4e5f6",
	  "nom_poi": "Tour Eiffel",
	  "adresse": "Champ de Mars",
	  "categorie": "Monument",
	  "mot_cle": ["romantique"],
	  "date_saisie": "2023-04-12",
	  "code_postal": "75007"
	}

Request payloads have their own types so that unknown or server-owned fields
are rejected at the HTTP boundary:

  - BaladeInput: creation payload (no _id)
  - BaladePatch: partial update payload, every field optional
  - KeywordRequest: single keyword append
  - RenameRequest: replacement nom_poi for the bulk rename

Identifiers use the MongoDB ObjectID format (24 hexadecimal characters) for
every store backend. See IsValidID and NewID.

The error taxonomy (ErrValidation, ErrInvalidID, ErrNotFound,
ErrDuplicateKeyword, ErrStore) lives here so that stores, the service layer
and the HTTP layer agree on it without import cycles.
*/
package models

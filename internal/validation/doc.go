// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared (it caches struct
// metadata and is safe for concurrent use). Field names in error messages are
// taken from the json tag, so clients see the names they sent:
//
//	nom_poi is required
//	date_saisie must start with a four digit year followed by '-'
//
// # Custom tags
//
//   - objectid: the value is a 24 character hexadecimal ObjectID
//   - datesaisie: the value starts with YYYY- (lexical year filtering relies on it)
//
// # Usage
//
//	var in models.BaladeInput
//	if verr := validation.ValidateStruct(&in); verr != nil {
//	    return fmt.Errorf("%w: %s", models.ErrValidation, verr.Error())
//	}
package validation

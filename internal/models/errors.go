// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package models

import "errors"

// Error taxonomy. Every error leaving the service layer matches exactly one of
// these with errors.Is.
var (
	// ErrValidation indicates missing or invalid client input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID indicates an identifier that is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound indicates a well-formed identifier with no matching record.
	ErrNotFound = errors.New("balade not found")

	// ErrDuplicateKeyword indicates the keyword is already in mot_cle.
	ErrDuplicateKeyword = errors.New("keyword already present")

	// ErrStore wraps any failure of the underlying record store.
	ErrStore = errors.New("store error")
)

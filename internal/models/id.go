// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package models

import "go.mongodb.org/mongo-driver/v2/bson"

// IsValidID reports whether id is a well-formed ObjectID hex string.
func IsValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// NewID returns a fresh ObjectID hex string. Embedded backends use it so that
// identifiers look the same whatever store holds the records.
func NewID() string {
	return bson.NewObjectID().Hex()
}

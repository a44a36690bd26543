// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package service implements the balade query and mutation operations on top
of an injected store.Store.

Every operation validates its input before touching the store:
identifiers must be ObjectID hex strings (models.ErrInvalidID), bodies are
checked with go-playground/validator (models.ErrValidation) and search
patterns must compile as regular expressions (models.ErrValidation).
Store outcomes models.ErrNotFound and models.ErrDuplicateKeyword pass
through unchanged. Anything else is wrapped in models.ErrStore.

Mutations publish an events.Event after the store write succeeds. Publish
failures are logged and never fail the operation.

RenameMatching is not atomic. It updates matching records one by one and
stops at the first failure, leaving earlier records renamed.
*/
package service

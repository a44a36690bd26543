// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package service

import (
	"context"
	"errors"

	"github.com/tomtom215/balades/internal/events"
	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/metrics"
	"github.com/tomtom215/balades/internal/models"
)

// Create validates in and stores it as a new record.
func (s *Service) Create(ctx context.Context, in *models.BaladeInput) (*models.Balade, error) {
	if err := validateBody(in); err != nil {
		return nil, err
	}

	created, err := s.store.Insert(ctx, in.Balade())
	if err != nil {
		return nil, storeErr("create", err)
	}

	logging.Ctx(ctx).Info().Str("balade_id", created.ID).Str("nom_poi", created.NomPoi).Msg("Balade created")

	e := events.NewEvent(events.TypeCreated)
	e.BaladeID = created.ID
	s.publish(ctx, e)

	return created, nil
}

// AddKeyword appends req.MotCle to the record's keywords unless it is
// already there.
func (s *Service) AddKeyword(ctx context.Context, id string, req *models.KeywordRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateBody(req); err != nil {
		return err
	}

	if err := s.store.AddKeyword(ctx, id, req.MotCle); err != nil {
		return storeErr("add keyword", err)
	}

	e := events.NewEvent(events.TypeKeywordAdded)
	e.BaladeID = id
	e.Keyword = req.MotCle
	s.publish(ctx, e)

	return nil
}

// Update applies patch and returns the updated record. An empty patch
// returns the record unchanged.
func (s *Service) Update(ctx context.Context, id string, patch *models.BaladePatch) (*models.Balade, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateBody(patch); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, storeErr("update", err)
	}

	e := events.NewEvent(events.TypeUpdated)
	e.BaladeID = id
	s.publish(ctx, e)

	return updated, nil
}

// RenameMatching sets nom_poi to req.NomPoi on every record whose
// texte_description matches pattern case-insensitively.
//
// Records are updated one at a time. The first store failure stops the
// loop and is returned; records renamed before it stay renamed. A record
// deleted between the match and its update is skipped.
func (s *Service) RenameMatching(ctx context.Context, pattern string, req *models.RenameRequest) error {
	if err := validateBody(req); err != nil {
		return err
	}
	if err := s.validatePattern(pattern); err != nil {
		return err
	}

	matches, err := s.store.Match(ctx, pattern, models.FieldTexteDescription)
	if err != nil {
		return storeErr("rename match", err)
	}

	log := logging.Ctx(ctx)
	patch := &models.BaladePatch{NomPoi: &req.NomPoi}
	renamed := 0
	for i := range matches {
		id := matches[i].ID
		if _, err := s.store.Update(ctx, id, patch); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				log.Debug().Str("balade_id", id).Msg("Matched balade vanished before rename")
				continue
			}
			metrics.RecordRenamed(renamed)
			log.Error().Err(err).
				Str("pattern", pattern).
				Int("renamed", renamed).
				Int("matched", len(matches)).
				Msg("Bulk rename stopped partway")
			return storeErr("rename", err)
		}
		renamed++
	}

	metrics.RecordRenamed(renamed)
	log.Info().Str("pattern", pattern).Int("renamed", renamed).Msg("Bulk rename complete")

	e := events.NewEvent(events.TypeRenamed)
	e.Pattern = pattern
	e.Count = renamed
	s.publish(ctx, e)

	return nil
}

// Delete removes one record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return storeErr("delete", err)
	}

	logging.Ctx(ctx).Info().Str("balade_id", id).Msg("Balade deleted")

	e := events.NewEvent(events.TypeDeleted)
	e.BaladeID = id
	s.publish(ctx, e)

	return nil
}

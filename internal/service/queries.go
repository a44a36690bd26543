// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package service

import (
	"context"

	"github.com/tomtom215/balades/internal/models"
)

// ListAll returns every record.
func (s *Service) ListAll(ctx context.Context) ([]models.Balade, error) {
	out, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, storeErr("list all", err)
	}
	return out, nil
}

// GetByID returns one record.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Balade, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get by id", err)
	}
	return b, nil
}

// Search matches term case-insensitively against nom_poi or texte_intro.
// term is a regular expression.
func (s *Service) Search(ctx context.Context, term string) ([]models.Balade, error) {
	if err := s.validatePattern(term); err != nil {
		return nil, err
	}
	out, err := s.store.Match(ctx, term, models.FieldNomPoi, models.FieldTexteIntro)
	if err != nil {
		return nil, storeErr("search", err)
	}
	return out, nil
}

// WithWebsite returns records that have a url_site.
func (s *Service) WithWebsite(ctx context.Context) ([]models.Balade, error) {
	out, err := s.store.FindWithWebsite(ctx)
	if err != nil {
		return nil, storeErr("with website", err)
	}
	return out, nil
}

// WithFiveKeywords returns records with exactly KeywordCount keywords.
func (s *Service) WithFiveKeywords(ctx context.Context) ([]models.Balade, error) {
	out, err := s.store.FindByKeywordCount(ctx, KeywordCount)
	if err != nil {
		return nil, storeErr("keyword count", err)
	}
	return out, nil
}

// PublishedIn returns records whose date_saisie starts with "<year>-",
// ascending by date_saisie. year is matched literally.
func (s *Service) PublishedIn(ctx context.Context, year string) ([]models.Balade, error) {
	out, err := s.store.FindByDatePrefix(ctx, year+"-")
	if err != nil {
		return nil, storeErr("published in", err)
	}
	return out, nil
}

// CountByPostalCode counts records whose code_postal equals code.
func (s *Service) CountByPostalCode(ctx context.Context, code string) (int64, error) {
	n, err := s.store.CountByPostalCode(ctx, code)
	if err != nil {
		return 0, storeErr("count by postal code", err)
	}
	return n, nil
}

// Synthesis counts records per code_postal, ascending by code. Records
// without a code form the first group.
func (s *Service) Synthesis(ctx context.Context) ([]models.PostalCodeCount, error) {
	out, err := s.store.CountGroupedByPostalCode(ctx)
	if err != nil {
		return nil, storeErr("synthesis", err)
	}
	return out, nil
}

// Categories returns the distinct categorie values in ascending order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	out, err := s.store.DistinctCategories(ctx)
	if err != nil {
		return nil, storeErr("categories", err)
	}
	return out, nil
}

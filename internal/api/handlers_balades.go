// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package api

import (
	"net/http"

	"github.com/tomtom215/balades/internal/models"
)

// Greeting answers the root path.
//
// @Summary Greeting
// @Tags Balades
// @Produce json
// @Success 200 {string} string "Bonjour"
// @Router / [get]
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, "Bonjour")
}

// ListAll returns every record.
//
// @Summary List all balades
// @Tags Balades
// @Produce json
// @Success 200 {array} models.Balade
// @Failure 500 {object} ErrorResponse
// @Router /all [get]
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r)(h.svc.ListAll(r.Context()))
}

// GetByID returns one record wrapped as {"reponse": ...}.
//
// @Summary Get a balade by id
// @Tags Balades
// @Produce json
// @Param id path string true "Record id (24 hex characters)"
// @Success 200 {object} BaladeResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse
// @Router /id/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetByID(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &BaladeResponse{Reponse: b})
}

// Search matches the term case-insensitively against nom_poi and texte_intro.
//
// @Summary Search balades
// @Description The term is a regular expression matched against nom_poi or texte_intro, ignoring case.
// @Tags Balades
// @Produce json
// @Param search path string true "Search pattern"
// @Success 200 {array} models.Balade
// @Failure 400 {object} ErrorResponse "Invalid pattern"
// @Failure 500 {object} ErrorResponse
// @Router /search/{search} [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r)(h.svc.Search(r.Context(), pathParam(r, "search")))
}

// WithWebsite returns records that have a url_site.
//
// @Summary Balades with a website
// @Tags Balades
// @Produce json
// @Success 200 {array} models.Balade
// @Failure 500 {object} ErrorResponse
// @Router /site-internet [get]
func (h *Handler) WithWebsite(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r)(h.svc.WithWebsite(r.Context()))
}

// WithFiveKeywords returns records holding exactly five keywords.
//
// @Summary Balades with five keywords
// @Tags Balades
// @Produce json
// @Success 200 {array} models.Balade
// @Failure 500 {object} ErrorResponse
// @Router /mot-cle [get]
func (h *Handler) WithFiveKeywords(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r)(h.svc.WithFiveKeywords(r.Context()))
}

// PublishedIn returns records entered in a year, oldest first.
//
// @Summary Balades published in a year
// @Tags Balades
// @Produce json
// @Param annee path string true "Year, e.g. 2023"
// @Success 200 {array} models.Balade
// @Failure 500 {object} ErrorResponse
// @Router /publie/{annee} [get]
func (h *Handler) PublishedIn(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r)(h.svc.PublishedIn(r.Context(), pathParam(r, "annee")))
}

// CountByPostalCode counts the records of one postal code.
//
// @Summary Count balades in an arrondissement
// @Tags Balades
// @Produce json
// @Param num path string true "Postal code"
// @Success 200 {object} CountResponse
// @Failure 500 {object} ErrorResponse
// @Router /arrondissement/{num} [get]
func (h *Handler) CountByPostalCode(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CountByPostalCode(r.Context(), pathParam(r, "num"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &CountResponse{Count: n})
}

// Synthesis returns the record count per postal code.
//
// @Summary Count per postal code
// @Tags Balades
// @Produce json
// @Success 200 {array} models.PostalCodeCount
// @Failure 500 {object} ErrorResponse
// @Router /synthese [get]
func (h *Handler) Synthesis(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Synthesis(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if groups == nil {
		groups = []models.PostalCodeCount{}
	}
	respondJSON(w, http.StatusOK, groups)
}

// Categories returns the distinct categories.
//
// @Summary Distinct categories
// @Tags Balades
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	respondJSON(w, http.StatusOK, cats)
}

// Create adds a record.
//
// @Summary Create a balade
// @Tags Balades
// @Accept json
// @Produce json
// @Param balade body models.BaladeInput true "Record; nom_poi, adresse and categorie are required"
// @Success 200 {object} models.Balade
// @Failure 400 {object} ErrorResponse "Missing field or malformed body"
// @Failure 500 {object} ErrorResponse
// @Router /add [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.BaladeInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// AddKeyword appends one keyword to a record.
//
// @Summary Add a keyword
// @Tags Balades
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param keyword body models.KeywordRequest true "Keyword to append"
// @Success 200 {object} models.Message
// @Failure 400 {object} ErrorResponse "Invalid id or body"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Keyword already present"
// @Failure 500 {object} ErrorResponse
// @Router /add-mot-cle/{id} [put]
func (h *Handler) AddKeyword(w http.ResponseWriter, r *http.Request) {
	var req models.KeywordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.AddKeyword(r.Context(), pathParam(r, "id"), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &models.Message{Message: msgKeywordAdded})
}

// Update applies a partial update and returns the record after the update.
//
// @Summary Update a balade
// @Tags Balades
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param patch body models.BaladePatch true "Fields to change"
// @Success 200 {object} models.Balade
// @Failure 400 {object} ErrorResponse "Invalid id or body"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse
// @Router /update-one/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.BaladePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeServiceError(w, r, err)
		return
	}

	b, err := h.svc.Update(r.Context(), pathParam(r, "id"), &patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// RenameMatching sets nom_poi on every record whose texte_description
// matches the pattern. Records are updated one at a time and a failure
// part way through leaves the earlier updates in place.
//
// @Summary Rename matching balades
// @Tags Balades
// @Accept json
// @Produce json
// @Param search path string true "Pattern matched against texte_description, ignoring case"
// @Param rename body models.RenameRequest true "New nom_poi"
// @Success 200 {object} models.Message
// @Failure 400 {object} ErrorResponse "Missing field or invalid pattern"
// @Failure 500 {object} ErrorResponse
// @Router /update-many/{search} [put]
func (h *Handler) RenameMatching(w http.ResponseWriter, r *http.Request) {
	var req models.RenameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.RenameMatching(r.Context(), pathParam(r, "search"), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &models.Message{Message: msgRenamed})
}

// Delete removes a record.
//
// @Summary Delete a balade
// @Tags Balades
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} models.Message
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse
// @Router /delete/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &models.Message{Message: msgDeleted})
}

// respondList returns a writer for list results. A nil slice is written as
// an empty JSON array.
func (h *Handler) respondList(w http.ResponseWriter, r *http.Request) func([]models.Balade, error) {
	return func(list []models.Balade, err error) {
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if list == nil {
			list = []models.Balade{}
		}
		respondJSON(w, http.StatusOK, list)
	}
}

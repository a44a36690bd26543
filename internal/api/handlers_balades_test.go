// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/balades/internal/models"
)

func TestGreeting(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[string](t, rec); got != "Bonjour" {
		t.Errorf("body = %q, want Bonjour", got)
	}
}

func TestCreate_TourEiffel(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/add", `{"nom_poi":"Tour Eiffel","adresse":"Champ de Mars","categorie":"Monument"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"mot_cle":[]`) {
		t.Errorf("mot_cle should serialize as an empty array: %s", rec.Body.String())
	}

	b := decode[models.Balade](t, rec)
	if !models.IsValidID(b.ID) {
		t.Errorf("_id = %q, want a store id", b.ID)
	}
	if b.NomPoi != "Tour Eiffel" || b.Adresse != "Champ de Mars" || b.Categorie != "Monument" {
		t.Errorf("unexpected record %+v", b)
	}

	get := do(t, h, http.MethodGet, "/id/"+b.ID, "")
	if get.Code != http.StatusOK {
		t.Fatalf("GET status = %d", get.Code)
	}
	if got := decode[BaladeResponse](t, get); got.Reponse == nil || got.Reponse.ID != b.ID {
		t.Errorf("reponse = %+v", got.Reponse)
	}
}

func TestCreate_BadBodies(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"missing nom_poi", `{"adresse":"a","categorie":"c"}`, ErrCodeValidationFailed},
		{"missing adresse", `{"nom_poi":"n","categorie":"c"}`, ErrCodeValidationFailed},
		{"empty categorie", `{"nom_poi":"n","adresse":"a","categorie":""}`, ErrCodeValidationFailed},
		{"unknown field", `{"nom_poi":"n","adresse":"a","categorie":"c","extra":1}`, ErrCodeBadRequest},
		{"malformed", `{"nom_poi":`, ErrCodeBadRequest},
		{"trailing data", `{"nom_poi":"n","adresse":"a","categorie":"c"} {}`, ErrCodeBadRequest},
		{"wrong type", `{"nom_poi":1,"adresse":"a","categorie":"c"}`, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodPost, "/add", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if got := decode[ErrorResponse](t, rec); got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestCreate_MissingFieldMessage(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/add", `{"adresse":"a","categorie":"c"}`)
	if got := decode[ErrorResponse](t, rec); !strings.Contains(got.Message, "nom_poi") {
		t.Errorf("message %q does not name nom_poi", got.Message)
	}
}

func TestAddKeyword_Romantique(t *testing.T) {
	t.Parallel()
	h, st := newTestServer(t)
	b := seedBalade(t, st, models.Balade{NomPoi: "Pont des Arts"})

	first := do(t, h, http.MethodPut, "/add-mot-cle/"+b.ID, `{"mot_cle":"romantique"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, body = %s", first.Code, first.Body.String())
	}
	if got := decode[models.Message](t, first); got.Message != "Mot clé ajouté avec succès" {
		t.Errorf("message = %q", got.Message)
	}

	second := do(t, h, http.MethodPut, "/add-mot-cle/"+b.ID, `{"mot_cle":"romantique"}`)
	if second.Code != http.StatusConflict {
		t.Fatalf("second status = %d, want 409", second.Code)
	}
	if got := decode[ErrorResponse](t, second); got.Message != "Mot clé déjà présent" {
		t.Errorf("message = %q", got.Message)
	}

	get := decode[BaladeResponse](t, do(t, h, http.MethodGet, "/id/"+b.ID, ""))
	if n := len(get.Reponse.MotCle); n != 1 {
		t.Errorf("keywords = %v, want exactly one", get.Reponse.MotCle)
	}
}

func TestIDRoutes_InvalidAndAbsent(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)
	absent := models.NewID()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/id/", ""},
		{http.MethodPut, "/add-mot-cle/", `{"mot_cle":"x"}`},
		{http.MethodPut, "/update-one/", `{"nom_poi":"x"}`},
		{http.MethodDelete, "/delete/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+tt.path, func(t *testing.T) {
			t.Parallel()

			bad := do(t, h, tt.method, tt.path+"not-an-id", tt.body)
			if bad.Code != http.StatusBadRequest {
				t.Errorf("invalid id: status = %d, want 400", bad.Code)
			}
			if got := decode[ErrorResponse](t, bad); got.Code != ErrCodeInvalidID || got.Message != "ID invalide" {
				t.Errorf("invalid id body = %+v", got)
			}

			missing := do(t, h, tt.method, tt.path+absent, tt.body)
			if missing.Code != http.StatusNotFound {
				t.Errorf("absent id: status = %d, want 404", missing.Code)
			}
			if got := decode[ErrorResponse](t, missing); got.Message != "Balade not found" {
				t.Errorf("absent id message = %q", got.Message)
			}
		})
	}
}

func TestUpdateOne(t *testing.T) {
	t.Parallel()
	h, st := newTestServer(t)
	b := seedBalade(t, st, models.Balade{NomPoi: "Louvre", CodePostal: "75001"})

	rec := do(t, h, http.MethodPut, "/update-one/"+b.ID, `{"nom_poi":"Musée du Louvre","url_site":"https://louvre.fr"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got := decode[models.Balade](t, rec)
	if got.NomPoi != "Musée du Louvre" || got.URLSite != "https://louvre.fr" || got.CodePostal != "75001" {
		t.Errorf("updated record = %+v", got)
	}

	empty := do(t, h, http.MethodPut, "/update-one/"+b.ID, `{"nom_poi":""}`)
	if empty.Code != http.StatusBadRequest {
		t.Errorf("empty nom_poi: status = %d, want 400", empty.Code)
	}
}

func TestUpdateMany(t *testing.T) {
	t.Parallel()
	h, st := newTestServer(t)
	seedBalade(t, st, models.Balade{NomPoi: "a", TexteDescription: "Une vue SUPERBE"})
	seedBalade(t, st, models.Balade{NomPoi: "b", TexteDescription: "superbe jardin"})
	seedBalade(t, st, models.Balade{NomPoi: "c", TexteDescription: "ordinaire"})

	rec := do(t, h, http.MethodPut, "/update-many/superbe", `{"nom_poi":"Superbe"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := decode[models.Message](t, rec); got.Message != "Mise à jour réussie" {
		t.Errorf("message = %q", got.Message)
	}

	all := decode[[]models.Balade](t, do(t, h, http.MethodGet, "/all", ""))
	renamed := 0
	for _, b := range all {
		if b.NomPoi == "Superbe" {
			renamed++
		}
	}
	if renamed != 2 {
		t.Errorf("renamed %d records, want 2", renamed)
	}

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing nom_poi", "/update-many/superbe", `{}`},
		{"invalid pattern", "/update-many/%28unclosed", `{"nom_poi":"x"}`},
	}
	for _, tt := range tests {
		if rec := do(t, h, http.MethodPut, tt.path, tt.body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, rec.Code)
		}
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	h, st := newTestServer(t)
	b := seedBalade(t, st, models.Balade{NomPoi: "Sacré-Cœur"})

	rec := do(t, h, http.MethodDelete, "/delete/"+b.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[models.Message](t, rec); got.Message != "Balade deleted successfully" {
		t.Errorf("message = %q", got.Message)
	}

	again := do(t, h, http.MethodDelete, "/delete/"+b.ID, "")
	if again.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", again.Code)
	}
}

func TestQueries(t *testing.T) {
	t.Parallel()
	h, st := newTestServer(t)
	seedBalade(t, st, models.Balade{NomPoi: "Tour Eiffel", CodePostal: "75007", DateSaisie: "2023-05-01", URLSite: "https://toureiffel.paris", Categorie: "Monument"})
	seedBalade(t, st, models.Balade{NomPoi: "Invalides", CodePostal: "75007", DateSaisie: "2023-01-01", TexteIntro: "Dôme doré", Categorie: "Musée"})
	seedBalade(t, st, models.Balade{NomPoi: "Notre-Dame", CodePostal: "75004", DateSaisie: "2022-12-31", MotCle: []string{"a", "b", "c", "d", "e"}})

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		if got := decode[[]models.Balade](t, do(t, h, http.MethodGet, "/all", "")); len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("search", func(t *testing.T) {
		t.Parallel()
		got := decode[[]models.Balade](t, do(t, h, http.MethodGet, "/search/D%C3%94ME", ""))
		if len(got) != 1 || got[0].NomPoi != "Invalides" {
			t.Errorf("search = %v", got)
		}
	})

	t.Run("search escaped space", func(t *testing.T) {
		t.Parallel()
		got := decode[[]models.Balade](t, do(t, h, http.MethodGet, "/search/tour%20eiffel", ""))
		if len(got) != 1 {
			t.Errorf("search = %v", got)
		}
	})

	t.Run("site-internet", func(t *testing.T) {
		t.Parallel()
		got := decode[[]models.Balade](t, do(t, h, http.MethodGet, "/site-internet", ""))
		if len(got) != 1 || got[0].NomPoi != "Tour Eiffel" {
			t.Errorf("site-internet = %v", got)
		}
	})

	t.Run("mot-cle", func(t *testing.T) {
		t.Parallel()
		got := decode[[]models.Balade](t, do(t, h, http.MethodGet, "/mot-cle", ""))
		if len(got) != 1 || got[0].NomPoi != "Notre-Dame" {
			t.Errorf("mot-cle = %v", got)
		}
	})

	t.Run("publie", func(t *testing.T) {
		t.Parallel()
		got := decode[[]models.Balade](t, do(t, h, http.MethodGet, "/publie/2023", ""))
		if len(got) != 2 || got[0].DateSaisie != "2023-01-01" || got[1].DateSaisie != "2023-05-01" {
			t.Errorf("publie = %v", got)
		}
	})

	t.Run("publie empty", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/publie/1999", "")
		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Errorf("body = %s, want []", rec.Body.String())
		}
	})

	t.Run("arrondissement", func(t *testing.T) {
		t.Parallel()
		if got := decode[CountResponse](t, do(t, h, http.MethodGet, "/arrondissement/75007", "")); got.Count != 2 {
			t.Errorf("count = %d, want 2", got.Count)
		}
	})

	t.Run("synthese", func(t *testing.T) {
		t.Parallel()
		got := decode[[]models.PostalCodeCount](t, do(t, h, http.MethodGet, "/synthese", ""))
		if len(got) != 2 || *got[0].ID != "75004" || got[1].Count != 2 {
			t.Errorf("synthese = %+v", got)
		}
	})

	t.Run("categories", func(t *testing.T) {
		t.Parallel()
		got := decode[[]string](t, do(t, h, http.MethodGet, "/categories", ""))
		if len(got) != 2 {
			t.Errorf("categories = %v, want Monument and Musée", got)
		}
	})
}

func TestStoreFailure_Returns500(t *testing.T) {
	t.Parallel()
	h := newServerFor(&brokenService{err: errors.Join(models.ErrStore, errors.New("connection refused"))})

	rec := do(t, h, http.MethodGet, "/all", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	got := decode[ErrorResponse](t, rec)
	if got.Code != ErrCodeDatabaseError || got.Message != "Server error" {
		t.Errorf("body = %+v", got)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("cause leaked to client: %s", rec.Body.String())
	}
	if got.RequestID == "" {
		t.Error("request_id missing from error body")
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[ErrorResponse](t, rec); got.Code != ErrCodeNotFound {
		t.Errorf("code = %q", got.Code)
	}

	if rec := do(t, h, http.MethodPost, "/all", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /all status = %d, want 405", rec.Code)
	}
}

func TestSearch_EscapedPercentDecodedOnce(t *testing.T) {
	t.Parallel()
	h, st := newTestServer(t)
	seedBalade(t, st, models.Balade{NomPoi: "Remise 100%41"})
	seedBalade(t, st, models.Balade{NomPoi: "Salle 100A"})

	rec := do(t, h, http.MethodGet, "/search/100%2541", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got := decode[[]models.Balade](t, rec)
	if len(got) != 1 || got[0].NomPoi != "Remise 100%41" {
		t.Errorf("search = %v, want only Remise 100%%41", got)
	}
}

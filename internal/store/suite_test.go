// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tomtom215/balades/internal/models"
)

// runStoreSuite runs the behavioral contract every backend must satisfy.
// newStore must return an empty store.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("InsertAssignsID", func(t *testing.T) { testInsertAssignsID(t, newStore(t)) })
	t.Run("FindByID", func(t *testing.T) { testFindByID(t, newStore(t)) })
	t.Run("FindAllOrder", func(t *testing.T) { testFindAllOrder(t, newStore(t)) })
	t.Run("Match", func(t *testing.T) { testMatch(t, newStore(t)) })
	t.Run("FindWithWebsite", func(t *testing.T) { testFindWithWebsite(t, newStore(t)) })
	t.Run("FindByKeywordCount", func(t *testing.T) { testFindByKeywordCount(t, newStore(t)) })
	t.Run("FindByDatePrefix", func(t *testing.T) { testFindByDatePrefix(t, newStore(t)) })
	t.Run("PostalCodes", func(t *testing.T) { testPostalCodes(t, newStore(t)) })
	t.Run("DistinctCategories", func(t *testing.T) { testDistinctCategories(t, newStore(t)) })
	t.Run("Update", func(t *testing.T) { testUpdate(t, newStore(t)) })
	t.Run("AddKeyword", func(t *testing.T) { testAddKeyword(t, newStore(t)) })
	t.Run("AddKeywordConcurrent", func(t *testing.T) { testAddKeywordConcurrent(t, newStore(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newStore(t)) })
	t.Run("EmptyResults", func(t *testing.T) { testEmptyResults(t, newStore(t)) })
}

func mustInsert(t *testing.T, st Store, b models.Balade) *models.Balade {
	t.Helper()
	out, err := st.Insert(context.Background(), b)
	if err != nil {
		t.Fatalf("Insert(%q) error = %v", b.NomPoi, err)
	}
	return out
}

func poi(name string) models.Balade {
	return models.Balade{NomPoi: name, Adresse: "1 rue de Rivoli", Categorie: "Monument"}
}

func ids(records []models.Balade) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func names(records []models.Balade) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.NomPoi
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func testInsertAssignsID(t *testing.T, st Store) {
	b := poi("Tour Eiffel")
	b.Adresse = "Champ de Mars"

	got := mustInsert(t, st, b)
	if !models.IsValidID(got.ID) {
		t.Errorf("Insert assigned invalid id %q", got.ID)
	}
	if got.MotCle == nil || len(got.MotCle) != 0 {
		t.Errorf("MotCle = %#v, want empty non-nil slice", got.MotCle)
	}
	if got.NomPoi != "Tour Eiffel" || got.Adresse != "Champ de Mars" {
		t.Errorf("Insert returned %+v", got)
	}

	other := mustInsert(t, st, poi("Louvre"))
	if other.ID == got.ID {
		t.Error("Insert reused an id")
	}
}

func testFindByID(t *testing.T, st Store) {
	ctx := context.Background()
	b := poi("Sacré-Cœur")
	b.MotCle = []string{"basilique", "vue"}
	b.URLSite = "https://www.sacre-coeur-montmartre.com"
	created := mustInsert(t, st, b)

	got, err := st.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.NomPoi != "Sacré-Cœur" || got.URLSite != b.URLSite {
		t.Errorf("FindByID() = %+v", got)
	}
	if !equalStrings(got.MotCle, []string{"basilique", "vue"}) {
		t.Errorf("MotCle = %v", got.MotCle)
	}

	_, err = st.FindByID(ctx, models.NewID())
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("FindByID(absent) error = %v, want ErrNotFound", err)
	}
}

func testFindAllOrder(t *testing.T, st Store) {
	a := mustInsert(t, st, poi("A"))
	b := mustInsert(t, st, poi("B"))
	c := mustInsert(t, st, poi("C"))

	all, err := st.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if want := []string{a.ID, b.ID, c.ID}; !equalStrings(ids(all), want) {
		t.Errorf("FindAll() ids = %v, want %v", ids(all), want)
	}
}

func testMatch(t *testing.T, st Store) {
	ctx := context.Background()

	eiffel := poi("Tour Eiffel")
	eiffel.TexteIntro = "La dame de fer"
	mustInsert(t, st, eiffel)

	louvre := poi("Musée du Louvre")
	louvre.TexteIntro = "Palais royal devenu musée"
	louvre.TexteDescription = "La Joconde et la pyramide"
	mustInsert(t, st, louvre)

	jardin := poi("Jardin des Plantes")
	jardin.TexteDescription = "Une tour de verre au milieu des serres"
	mustInsert(t, st, jardin)

	tests := []struct {
		name    string
		pattern string
		fields  []models.Field
		want    []string
	}{
		{"case insensitive name", "tour", []models.Field{models.FieldNomPoi, models.FieldTexteIntro}, []string{"Tour Eiffel"}},
		{"intro only", "ROYAL", []models.Field{models.FieldNomPoi, models.FieldTexteIntro}, []string{"Musée du Louvre"}},
		{"regex alternation", "eiffel|plantes", []models.Field{models.FieldNomPoi}, []string{"Tour Eiffel", "Jardin des Plantes"}},
		{"description", "tour", []models.Field{models.FieldTexteDescription}, []string{"Jardin des Plantes"}},
		{"anchored", "^musée", []models.Field{models.FieldNomPoi}, []string{"Musée du Louvre"}},
		{"no match", "zzz", []models.Field{models.FieldNomPoi, models.FieldTexteIntro}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := st.Match(ctx, tt.pattern, tt.fields...)
			if err != nil {
				t.Fatalf("Match(%q) error = %v", tt.pattern, err)
			}
			if !equalStrings(names(got), tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.pattern, names(got), tt.want)
			}
		})
	}
}

func testFindWithWebsite(t *testing.T, st Store) {
	with := poi("Orsay")
	with.URLSite = "https://www.musee-orsay.fr"
	mustInsert(t, st, with)
	mustInsert(t, st, poi("Sans site"))

	got, err := st.FindWithWebsite(context.Background())
	if err != nil {
		t.Fatalf("FindWithWebsite() error = %v", err)
	}
	if !equalStrings(names(got), []string{"Orsay"}) {
		t.Errorf("FindWithWebsite() = %v", names(got))
	}
}

func testFindByKeywordCount(t *testing.T, st Store) {
	five := poi("Cinq")
	five.MotCle = []string{"a", "b", "c", "d", "e"}
	mustInsert(t, st, five)

	four := poi("Quatre")
	four.MotCle = []string{"a", "b", "c", "d"}
	created := mustInsert(t, st, four)

	got, err := st.FindByKeywordCount(context.Background(), 5)
	if err != nil {
		t.Fatalf("FindByKeywordCount() error = %v", err)
	}
	if !equalStrings(names(got), []string{"Cinq"}) {
		t.Errorf("FindByKeywordCount(5) = %v", names(got))
	}

	// The count follows appends.
	if err := st.AddKeyword(context.Background(), created.ID, "e"); err != nil {
		t.Fatalf("AddKeyword() error = %v", err)
	}
	got, err = st.FindByKeywordCount(context.Background(), 5)
	if err != nil {
		t.Fatalf("FindByKeywordCount() error = %v", err)
	}
	if !equalStrings(names(got), []string{"Cinq", "Quatre"}) {
		t.Errorf("FindByKeywordCount(5) after append = %v", names(got))
	}
}

func testFindByDatePrefix(t *testing.T, st Store) {
	dates := []struct{ name, date string }{
		{"late", "2023-11-05"},
		{"old", "2022-12-31"},
		{"early", "2023-01-01"},
		{"undated", ""},
		{"lookalike", "20234-01-01"},
	}
	for _, d := range dates {
		b := poi(d.name)
		b.DateSaisie = d.date
		mustInsert(t, st, b)
	}

	got, err := st.FindByDatePrefix(context.Background(), "2023-")
	if err != nil {
		t.Fatalf("FindByDatePrefix() error = %v", err)
	}
	if want := []string{"early", "late"}; !equalStrings(names(got), want) {
		t.Errorf("FindByDatePrefix(2023-) = %v, want %v", names(got), want)
	}

	// Regex metacharacters in the prefix are literal.
	got, err = st.FindByDatePrefix(context.Background(), "....-")
	if err != nil {
		t.Fatalf("FindByDatePrefix() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindByDatePrefix(....-) = %v, want none", names(got))
	}
}

func testPostalCodes(t *testing.T, st Store) {
	ctx := context.Background()
	for _, code := range []string{"75007", "75001", "75007", "", "75018", "75007"} {
		b := poi("poi " + code)
		b.CodePostal = code
		mustInsert(t, st, b)
	}

	n, err := st.CountByPostalCode(ctx, "75007")
	if err != nil {
		t.Fatalf("CountByPostalCode() error = %v", err)
	}
	if n != 3 {
		t.Errorf("CountByPostalCode(75007) = %d, want 3", n)
	}

	n, err = st.CountByPostalCode(ctx, "75020")
	if err != nil || n != 0 {
		t.Errorf("CountByPostalCode(75020) = %d, %v, want 0", n, err)
	}

	groups, err := st.CountGroupedByPostalCode(ctx)
	if err != nil {
		t.Fatalf("CountGroupedByPostalCode() error = %v", err)
	}
	if len(groups) != 4 {
		t.Fatalf("CountGroupedByPostalCode() = %d groups, want 4", len(groups))
	}
	if groups[0].ID != nil || groups[0].Count != 1 {
		t.Errorf("first group = %+v, want missing code with count 1", groups[0])
	}

	wantCodes := []string{"75001", "75007", "75018"}
	wantCounts := []int64{1, 3, 1}
	var total int64
	for i, g := range groups {
		total += g.Count
		if i == 0 {
			continue
		}
		if g.ID == nil || *g.ID != wantCodes[i-1] || g.Count != wantCounts[i-1] {
			t.Errorf("group %d = %+v, want %s:%d", i, g, wantCodes[i-1], wantCounts[i-1])
		}
	}

	all, err := st.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if total != int64(len(all)) {
		t.Errorf("sum of group counts = %d, want %d", total, len(all))
	}
}

func testDistinctCategories(t *testing.T, st Store) {
	for _, c := range []string{"Parc", "Monument", "Musée", "Monument", "Parc"} {
		b := poi("x")
		b.Categorie = c
		mustInsert(t, st, b)
	}

	got, err := st.DistinctCategories(context.Background())
	if err != nil {
		t.Fatalf("DistinctCategories() error = %v", err)
	}
	if want := []string{"Monument", "Musée", "Parc"}; !equalStrings(got, want) {
		t.Errorf("DistinctCategories() = %v, want %v", got, want)
	}
}

func testUpdate(t *testing.T, st Store) {
	ctx := context.Background()
	b := poi("Panthéon")
	b.URLSite = "https://www.paris-pantheon.fr"
	b.CodePostal = "75005"
	created := mustInsert(t, st, b)

	name := "Le Panthéon"
	empty := ""
	kws := []string{"crypte"}
	updated, err := st.Update(ctx, created.ID, &models.BaladePatch{
		NomPoi:  &name,
		URLSite: &empty,
		MotCle:  &kws,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Update changed id to %q", updated.ID)
	}
	if updated.NomPoi != "Le Panthéon" || updated.URLSite != "" || updated.CodePostal != "75005" {
		t.Errorf("Update() = %+v", updated)
	}
	if !equalStrings(updated.MotCle, kws) {
		t.Errorf("MotCle = %v, want %v", updated.MotCle, kws)
	}

	stored, err := st.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.NomPoi != "Le Panthéon" || stored.URLSite != "" {
		t.Errorf("stored = %+v", stored)
	}

	same, err := st.Update(ctx, created.ID, &models.BaladePatch{})
	if err != nil {
		t.Fatalf("Update(empty patch) error = %v", err)
	}
	if same.NomPoi != "Le Panthéon" {
		t.Errorf("Update(empty patch) = %+v", same)
	}

	_, err = st.Update(ctx, models.NewID(), &models.BaladePatch{NomPoi: &name})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update(absent) error = %v, want ErrNotFound", err)
	}
}

func testAddKeyword(t *testing.T, st Store) {
	ctx := context.Background()
	created := mustInsert(t, st, poi("Pont Neuf"))

	if err := st.AddKeyword(ctx, created.ID, "romantique"); err != nil {
		t.Fatalf("AddKeyword() error = %v", err)
	}
	err := st.AddKeyword(ctx, created.ID, "romantique")
	if !errors.Is(err, models.ErrDuplicateKeyword) {
		t.Errorf("second AddKeyword() error = %v, want ErrDuplicateKeyword", err)
	}
	if err := st.AddKeyword(ctx, created.ID, "seine"); err != nil {
		t.Fatalf("AddKeyword(seine) error = %v", err)
	}

	got, err := st.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if want := []string{"romantique", "seine"}; !equalStrings(got.MotCle, want) {
		t.Errorf("MotCle = %v, want %v", got.MotCle, want)
	}

	err = st.AddKeyword(ctx, models.NewID(), "romantique")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("AddKeyword(absent) error = %v, want ErrNotFound", err)
	}
}

func testAddKeywordConcurrent(t *testing.T, st Store) {
	ctx := context.Background()
	created := mustInsert(t, st, poi("Notre-Dame"))

	const workers = 16
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.AddKeyword(ctx, created.ID, "gothique")
		}(i)
	}
	wg.Wait()

	successes := 0
	for i, err := range errs {
		switch {
		case err == nil:
			successes++
		case !errors.Is(err, models.ErrDuplicateKeyword):
			t.Errorf("worker %d: AddKeyword error = %v, want ErrDuplicateKeyword", i, err)
		}
	}
	if successes != 1 {
		t.Errorf("concurrent AddKeyword succeeded %d times, want 1", successes)
	}
	got, err := st.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !equalStrings(got.MotCle, []string{"gothique"}) {
		t.Errorf("MotCle = %v, want [gothique]", got.MotCle)
	}
}

func testDelete(t *testing.T, st Store) {
	ctx := context.Background()
	created := mustInsert(t, st, poi("Arc de Triomphe"))
	kept := mustInsert(t, st, poi("Invalides"))

	if err := st.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := st.FindByID(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("FindByID(deleted) error = %v, want ErrNotFound", err)
	}
	if err := st.Delete(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	all, err := st.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if !equalStrings(ids(all), []string{kept.ID}) {
		t.Errorf("FindAll() after delete = %v", ids(all))
	}
}

func testEmptyResults(t *testing.T, st Store) {
	ctx := context.Background()

	all, err := st.FindAll(ctx)
	if err != nil || all == nil || len(all) != 0 {
		t.Errorf("FindAll() on empty store = %#v, %v", all, err)
	}
	groups, err := st.CountGroupedByPostalCode(ctx)
	if err != nil || groups == nil || len(groups) != 0 {
		t.Errorf("CountGroupedByPostalCode() on empty store = %#v, %v", groups, err)
	}
	cats, err := st.DistinctCategories(ctx)
	if err != nil || cats == nil || len(cats) != 0 {
		t.Errorf("DistinctCategories() on empty store = %#v, %v", cats, err)
	}
	if err := st.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package models

import "slices"

// Field names a string attribute of a Balade that stores can pattern-match on.
// Values are the wire and storage names of the attribute.
type Field string

const (
	FieldNomPoi           Field = "nom_poi"
	FieldTexteIntro       Field = "texte_intro"
	FieldTexteDescription Field = "texte_description"
)

// Balade is a walking tour point of interest.
//
// Optional string attributes use the empty string for "absent": they are
// omitted from JSON and never written to the store.
type Balade struct {
	ID               string   `json:"_id"`
	NomPoi           string   `json:"nom_poi"`
	Adresse          string   `json:"adresse"`
	Categorie        string   `json:"categorie"`
	Type             string   `json:"type,omitempty"`
	TexteIntro       string   `json:"texte_intro,omitempty"`
	TexteDescription string   `json:"texte_description,omitempty"`
	MotCle           []string `json:"mot_cle"`
	DateSaisie       string   `json:"date_saisie,omitempty"`
	CodePostal       string   `json:"code_postal,omitempty"`
	URLSite          string   `json:"url_site,omitempty"`
}

// FieldValue returns the value of a pattern-matchable attribute.
func (b *Balade) FieldValue(f Field) string {
	switch f {
	case FieldNomPoi:
		return b.NomPoi
	case FieldTexteIntro:
		return b.TexteIntro
	case FieldTexteDescription:
		return b.TexteDescription
	default:
		return ""
	}
}

// HasKeyword reports whether kw is already one of the record's keywords.
func (b *Balade) HasKeyword(kw string) bool {
	return slices.Contains(b.MotCle, kw)
}

// Clone returns a deep copy so callers cannot alias the keyword slice.
func (b *Balade) Clone() Balade {
	c := *b
	c.MotCle = append([]string{}, b.MotCle...)
	return c
}

// Normalize makes MotCle a non-nil slice so it always serializes as an array.
func (b *Balade) Normalize() {
	if b.MotCle == nil {
		b.MotCle = []string{}
	}
}

// BaladeInput is the payload accepted by the create operation.
type BaladeInput struct {
	NomPoi           string   `json:"nom_poi" validate:"required"`
	Adresse          string   `json:"adresse" validate:"required"`
	Categorie        string   `json:"categorie" validate:"required"`
	Type             string   `json:"type"`
	TexteIntro       string   `json:"texte_intro"`
	TexteDescription string   `json:"texte_description"`
	MotCle           []string `json:"mot_cle"`
	DateSaisie       string   `json:"date_saisie" validate:"omitempty,datesaisie"`
	CodePostal       string   `json:"code_postal"`
	URLSite          string   `json:"url_site"`
}

// Balade converts the input into a record without an identifier.
func (in *BaladeInput) Balade() Balade {
	b := Balade{
		NomPoi:           in.NomPoi,
		Adresse:          in.Adresse,
		Categorie:        in.Categorie,
		Type:             in.Type,
		TexteIntro:       in.TexteIntro,
		TexteDescription: in.TexteDescription,
		MotCle:           append([]string{}, in.MotCle...),
		DateSaisie:       in.DateSaisie,
		CodePostal:       in.CodePostal,
		URLSite:          in.URLSite,
	}
	return b
}

// BaladePatch is a partial update. Nil fields are left untouched.
// Required attributes may be replaced but never emptied.
type BaladePatch struct {
	NomPoi           *string   `json:"nom_poi" validate:"omitnil,min=1"`
	Adresse          *string   `json:"adresse" validate:"omitnil,min=1"`
	Categorie        *string   `json:"categorie" validate:"omitnil,min=1"`
	Type             *string   `json:"type"`
	TexteIntro       *string   `json:"texte_intro"`
	TexteDescription *string   `json:"texte_description"`
	MotCle           *[]string `json:"mot_cle"`
	DateSaisie       *string   `json:"date_saisie" validate:"omitnil,datesaisie"`
	CodePostal       *string   `json:"code_postal"`
	URLSite          *string   `json:"url_site"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *BaladePatch) IsEmpty() bool {
	return p.NomPoi == nil && p.Adresse == nil && p.Categorie == nil &&
		p.Type == nil && p.TexteIntro == nil && p.TexteDescription == nil &&
		p.MotCle == nil && p.DateSaisie == nil && p.CodePostal == nil &&
		p.URLSite == nil
}

// Apply writes the non-nil fields of the patch onto b.
func (p *BaladePatch) Apply(b *Balade) {
	setString(&b.NomPoi, p.NomPoi)
	setString(&b.Adresse, p.Adresse)
	setString(&b.Categorie, p.Categorie)
	setString(&b.Type, p.Type)
	setString(&b.TexteIntro, p.TexteIntro)
	setString(&b.TexteDescription, p.TexteDescription)
	setString(&b.DateSaisie, p.DateSaisie)
	setString(&b.CodePostal, p.CodePostal)
	setString(&b.URLSite, p.URLSite)
	if p.MotCle != nil {
		b.MotCle = append([]string{}, (*p.MotCle)...)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// KeywordRequest is the body of the append-keyword operation.
type KeywordRequest struct {
	MotCle string `json:"mot_cle" validate:"required"`
}

// RenameRequest is the body of the bulk rename operation.
type RenameRequest struct {
	NomPoi string `json:"nom_poi" validate:"required"`
}

// PostalCodeCount is one group of the synthesis aggregation.
// ID is nil for records without a postal code.
type PostalCodeCount struct {
	ID    *string `json:"_id"`
	Count int64   `json:"count"`
}

// Message is the acknowledgement body returned by mutations that do not
// echo a record.
type Message struct {
	Message string `json:"message"`
}

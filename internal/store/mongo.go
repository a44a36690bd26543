// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tomtom215/balades/internal/config"
	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/models"
)

// baladeDocument is the BSON shape of a record in the collection.
type baladeDocument struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	NomPoi           string        `bson:"nom_poi"`
	Adresse          string        `bson:"adresse"`
	Categorie        string        `bson:"categorie"`
	Type             string        `bson:"type,omitempty"`
	TexteIntro       string        `bson:"texte_intro,omitempty"`
	TexteDescription string        `bson:"texte_description,omitempty"`
	MotCle           []string      `bson:"mot_cle"`
	DateSaisie       string        `bson:"date_saisie,omitempty"`
	CodePostal       string        `bson:"code_postal,omitempty"`
	URLSite          string        `bson:"url_site,omitempty"`
}

func (d *baladeDocument) balade() models.Balade {
	b := models.Balade{
		ID:               d.ID.Hex(),
		NomPoi:           d.NomPoi,
		Adresse:          d.Adresse,
		Categorie:        d.Categorie,
		Type:             d.Type,
		TexteIntro:       d.TexteIntro,
		TexteDescription: d.TexteDescription,
		MotCle:           d.MotCle,
		DateSaisie:       d.DateSaisie,
		CodePostal:       d.CodePostal,
		URLSite:          d.URLSite,
	}
	b.Normalize()
	return b
}

func newBaladeDocument(b *models.Balade) baladeDocument {
	return baladeDocument{
		ID:               bson.NewObjectID(),
		NomPoi:           b.NomPoi,
		Adresse:          b.Adresse,
		Categorie:        b.Categorie,
		Type:             b.Type,
		TexteIntro:       b.TexteIntro,
		TexteDescription: b.TexteDescription,
		MotCle:           ensureKeywords(b.MotCle),
		DateSaisie:       b.DateSaisie,
		CodePostal:       b.CodePostal,
		URLSite:          b.URLSite,
	}
}

// MongoStore keeps records in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg *config.MongoConfig) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("balades").
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logging.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("Connected to MongoDB")

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// objectID converts a hex id. Callers validate ids first, so a failure here
// is reported as not found rather than as a driver error.
func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, notFound(id)
	}
	return oid, nil
}

func (s *MongoStore) find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) ([]models.Balade, error) {
	cursor, err := s.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}

	var docs []baladeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}

	out := make([]models.Balade, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].balade())
	}
	return out, nil
}

// FindAll returns every document in natural order.
func (s *MongoStore) FindAll(ctx context.Context) ([]models.Balade, error) {
	return s.find(ctx, bson.D{})
}

// FindByID returns one document.
func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Balade, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc baladeDocument
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	b := doc.balade()
	return &b, nil
}

// Match builds an $or of case-insensitive $regex conditions.
func (s *MongoStore) Match(ctx context.Context, pattern string, fields ...models.Field) ([]models.Balade, error) {
	if len(fields) == 0 {
		return []models.Balade{}, nil
	}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.D{{Key: string(f), Value: bson.Regex{Pattern: pattern, Options: "i"}}})
	}
	out, err := s.find(ctx, bson.D{{Key: "$or", Value: or}})
	if isInvalidRegex(err) {
		return nil, fmt.Errorf("%w: invalid pattern %q: %w", models.ErrValidation, pattern, err)
	}
	return out, err
}

// isInvalidRegex reports whether the server rejected a $regex pattern.
func isInvalidRegex(err error) bool {
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.HasErrorCode(51091) || se.HasErrorCodeWithMessage(2, "Regular expression is invalid")
}

// FindWithWebsite returns documents whose url_site exists and is neither null nor empty.
func (s *MongoStore) FindWithWebsite(ctx context.Context) ([]models.Balade, error) {
	return s.find(ctx, bson.D{{Key: "url_site", Value: bson.D{
		{Key: "$exists", Value: true},
		{Key: "$nin", Value: bson.A{nil, ""}},
	}}})
}

// FindByKeywordCount uses $size.
func (s *MongoStore) FindByKeywordCount(ctx context.Context, n int) ([]models.Balade, error) {
	return s.find(ctx, bson.D{{Key: "mot_cle", Value: bson.D{{Key: "$size", Value: n}}}})
}

// FindByDatePrefix uses an anchored, escaped $regex and sorts on date_saisie.
func (s *MongoStore) FindByDatePrefix(ctx context.Context, prefix string) ([]models.Balade, error) {
	filter := bson.D{{Key: "date_saisie", Value: bson.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}}
	opts := options.Find().SetSort(bson.D{{Key: "date_saisie", Value: 1}})
	return s.find(ctx, filter, opts)
}

// CountByPostalCode uses CountDocuments.
func (s *MongoStore) CountByPostalCode(ctx context.Context, code string) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{{Key: "code_postal", Value: code}})
	if err != nil {
		return 0, fmt.Errorf("mongo count: %w", err)
	}
	return n, nil
}

// CountGroupedByPostalCode runs a $group / $sort aggregation.
func (s *MongoStore) CountGroupedByPostalCode(ctx context.Context) ([]models.PostalCodeCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$code_postal"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("mongo aggregate: %w", err)
	}

	var rows []struct {
		ID    *string `bson:"_id"`
		Count int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}

	out := make([]models.PostalCodeCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.PostalCodeCount{ID: r.ID, Count: r.Count})
	}
	return out, nil
}

// DistinctCategories uses the distinct command.
func (s *MongoStore) DistinctCategories(ctx context.Context) ([]string, error) {
	res := s.coll.Distinct(ctx, "categorie", bson.D{})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("mongo distinct: %w", err)
	}

	var categories []string
	if err := res.Decode(&categories); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	slices.Sort(categories)
	return categories, nil
}

// Insert creates a document with a driver-generated ObjectID.
func (s *MongoStore) Insert(ctx context.Context, b models.Balade) (*models.Balade, error) {
	doc := newBaladeDocument(&b)
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	out := doc.balade()
	return &out, nil
}

// updateDocument translates a patch into $set and $unset stages. Optional
// fields patched to "" are removed from the document.
func updateDocument(p *models.BaladePatch) bson.D {
	set := bson.D{}
	unset := bson.D{}

	required := []struct {
		key string
		val *string
	}{
		{"nom_poi", p.NomPoi},
		{"adresse", p.Adresse},
		{"categorie", p.Categorie},
	}
	for _, f := range required {
		if f.val != nil {
			set = append(set, bson.E{Key: f.key, Value: *f.val})
		}
	}

	optional := []struct {
		key string
		val *string
	}{
		{"type", p.Type},
		{"texte_intro", p.TexteIntro},
		{"texte_description", p.TexteDescription},
		{"date_saisie", p.DateSaisie},
		{"code_postal", p.CodePostal},
		{"url_site", p.URLSite},
	}
	for _, f := range optional {
		switch {
		case f.val == nil:
		case *f.val == "":
			unset = append(unset, bson.E{Key: f.key, Value: ""})
		default:
			set = append(set, bson.E{Key: f.key, Value: *f.val})
		}
	}

	if p.MotCle != nil {
		set = append(set, bson.E{Key: "mot_cle", Value: ensureKeywords(*p.MotCle)})
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}
	return update
}

// Update runs FindOneAndUpdate returning the document after the update.
func (s *MongoStore) Update(ctx context.Context, id string, patch *models.BaladePatch) (*models.Balade, error) {
	if patch.IsEmpty() {
		return s.FindByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc baladeDocument
	err = s.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, updateDocument(patch), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("mongo update: %w", err)
	}
	b := doc.balade()
	return &b, nil
}

// AddKeyword pushes kw only when it is not already present, in a single
// conditional update. When nothing matched, a lookup tells a missing record
// apart from a duplicate keyword.
func (s *MongoStore) AddKeyword(ctx context.Context, id, kw string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	filter := bson.D{
		{Key: "_id", Value: oid},
		{Key: "mot_cle", Value: bson.D{{Key: "$ne", Value: kw}}},
	}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "mot_cle", Value: kw}}}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("mongo add keyword: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := s.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("mongo count: %w", err)
	}
	if n == 0 {
		return notFound(id)
	}
	return fmt.Errorf("%w: %q", models.ErrDuplicateKeyword, kw)
}

// Delete removes one document.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Ping checks the primary.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

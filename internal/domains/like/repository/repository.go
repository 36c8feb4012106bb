package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dormy/config"
	"dormy/infras/mongo"
	"dormy/infras/otel"
	"dormy/internal/domains/like/model"
	"dormy/shared/constant"
	"dormy/shared/timezone"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Like is the store of record for likes.
type Like interface {
	EnsureIndexes(ctx context.Context) error
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) (bool, error)
	Exists(ctx context.Context, userID, listingID string) (bool, error)
	ListingIDs(ctx context.Context, userID string) ([]string, error)
}

type repositoryImpl struct {
	collection *mongoDriver.Collection
	otel       otel.Otel
}

func New(db *mongo.Database, cfg *config.Config, otel otel.Otel) Like {
	return &repositoryImpl{
		collection: db.Collection(cfg.DB.Mongo.LikeCollection),
		otel:       otel,
	}
}

func pair(userID, listingID string) bson.D {
	return bson.D{
		{Key: model.FieldUserID, Value: userID},
		{Key: model.FieldListingID, Value: listingID},
	}
}

func (r *repositoryImpl) EnsureIndexes(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelMongoScopeName, constant.OtelMongoScopeName+".EnsureIndexes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.collection.Indexes().CreateMany(ctx, []mongoDriver.IndexModel{
		{
			Keys:    bson.D{{Key: model.FieldUserID, Value: 1}, {Key: model.FieldListingID, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: model.FieldUserID, Value: 1}, {Key: model.FieldCreatedAt, Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create like indexes: %w", err)
	}

	return nil
}

// Add is idempotent: liking twice keeps the first timestamp.
func (r *repositoryImpl) Add(ctx context.Context, userID, listingID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelMongoScopeName, constant.OtelMongoScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	update := bson.D{{Key: "$setOnInsert", Value: model.Like{
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: timezone.Now(),
	}}}

	if _, err = r.collection.UpdateOne(ctx, pair(userID, listingID), update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Remove(ctx context.Context, userID, listingID string) (removed bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelMongoScopeName, constant.OtelMongoScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := r.collection.DeleteOne(ctx, pair(userID, listingID))
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	return res.DeletedCount > 0, nil
}

func (r *repositoryImpl) Exists(ctx context.Context, userID, listingID string) (exists bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelMongoScopeName, constant.OtelMongoScopeName+".Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	n, err := r.collection.CountDocuments(ctx, pair(userID, listingID), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return n > 0, nil
}

// ListingIDs returns the user's liked listings, newest first.
func (r *repositoryImpl) ListingIDs(ctx context.Context, userID string) (ids []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelMongoScopeName, constant.OtelMongoScopeName+".ListingIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	opts := options.Find().
		SetSort(bson.D{{Key: model.FieldCreatedAt, Value: -1}}).
		SetProjection(bson.D{{Key: model.FieldListingID, Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{{Key: model.FieldUserID, Value: userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find likes: %w", err)
	}

	var likes []model.Like
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes: %w", err)
	}

	ids = make([]string, len(likes))
	for i, like := range likes {
		ids[i] = like.ListingID
	}

	scope.SetAttribute("like.count", len(ids))

	return ids, nil
}

package store

import (
	"context"

	"staymate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the optional persistent listing store. Same contract as Memory;
// "prepend" is an insert, ordering comes from the createdAt-desc retrieval.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

func (s *Mongo) List(ctx context.Context) ([]models.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *Mongo) Get(ctx context.Context, id string) (models.Listing, bool, error) {
	var l models.Listing
	err := s.coll.FindOne(ctx, bson.M{"listingid": id}).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return models.Listing{}, false, nil
	}
	if err != nil {
		return models.Listing{}, false, err
	}
	return l, true, nil
}

func (s *Mongo) Prepend(ctx context.Context, l models.Listing) error {
	_, err := s.coll.InsertOne(ctx, l)
	return err
}

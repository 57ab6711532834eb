package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

const opTimeout = 5 * time.Second

// Mongo is the MongoDB-backed Store.
type Mongo struct {
	coll *mongo.Collection
}

// Connect dials MongoDB and prepares the workbooks collection, including
// the unique week-key index that backs the create-only contract.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	coll := client.Database(database).Collection("workbooks")
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "weekKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("creating week key index: %w", err)
	}

	return &Mongo{coll: coll}, nil
}

func (m *Mongo) Find(ctx context.Context, weekKey string) (*workbook.Workbook, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var wb workbook.Workbook
	err := m.coll.FindOne(ctx, bson.M{"weekKey": weekKey}).Decode(&wb)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding workbook %s: %w", weekKey, err)
	}
	return &wb, nil
}

func (m *Mongo) Create(ctx context.Context, wb *workbook.Workbook) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := m.coll.InsertOne(ctx, wb)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("storing workbook %s: %w", wb.WeekKey, err)
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, weekKey string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := m.coll.DeleteOne(ctx, bson.M{"weekKey": weekKey}); err != nil {
		return fmt.Errorf("deleting workbook %s: %w", weekKey, err)
	}
	return nil
}

func (m *Mongo) PurgeOthers(ctx context.Context, weekKey string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"weekKey": bson.M{"$ne": weekKey}}
	if _, err := m.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("purging stale workbooks: %w", err)
	}
	return nil
}

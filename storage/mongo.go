package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	currencyRates "github.com/malusev998/currency-rates"
)

type (
	mongoStorage struct {
		ctx        context.Context
		client     *mongo.Client
		collection *mongo.Collection
	}

	mongoSnapshot struct {
		ID            primitive.ObjectID `bson:"_id,omitempty"`
		Code          string             `bson:"code"`
		Name          string             `bson:"name"`
		Rate          float64            `bson:"rate"`
		EffectiveDate string             `bson:"effectiveDate"`
		CreatedAt     time.Time          `bson:"createdAt"`
	}
)

func NewMongoStorage(config MongoDBConfig) (currencyRates.Storage, error) {
	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))

	if err != nil {
		return nil, err
	}

	storage := mongoStorage{
		ctx:        ctx,
		client:     client,
		collection: client.Database(config.Database).Collection(config.Collection),
	}

	if config.Migrate {
		if err := storage.Migrate(); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	return storage, nil
}

func (m mongoStorage) GetStorageProviderName() string {
	return string(MongoDB)
}

func (m mongoStorage) Migrate() error {
	_, err := m.collection.Indexes().CreateOne(m.ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "code", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	})

	return err
}

func (m mongoStorage) Store(snapshots []currencyRates.Snapshot) ([]currencyRates.SnapshotWithID, error) {
	if len(snapshots) == 0 {
		return []currencyRates.SnapshotWithID{}, nil
	}

	documents := make([]interface{}, 0, len(snapshots))

	for _, snapshot := range snapshots {
		documents = append(documents, mongoSnapshot{
			Code:          snapshot.Code,
			Name:          snapshot.DisplayName,
			Rate:          snapshot.RateToUSD,
			EffectiveDate: snapshot.EffectiveDate,
			CreatedAt:     snapshot.CreatedAt,
		})
	}

	result, err := m.collection.InsertMany(m.ctx, documents)

	if err != nil {
		return nil, err
	}

	stored := make([]currencyRates.SnapshotWithID, 0, len(snapshots))

	for i, snapshot := range snapshots {
		stored = append(stored, currencyRates.SnapshotWithID{
			Snapshot: snapshot,
			ID:       result.InsertedIDs[i],
		})
	}

	return stored, nil
}

func (m mongoStorage) Get(code string, page, perPage int64) ([]currencyRates.SnapshotWithID, error) {
	if err := ValidatePage(page, perPage); err != nil {
		return nil, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(offset(page, perPage)).
		SetLimit(perPage)

	cursor, err := m.collection.Find(m.ctx, bson.M{"code": code}, findOptions)

	if err != nil {
		return nil, err
	}

	defer cursor.Close(m.ctx)

	snapshots := make([]currencyRates.SnapshotWithID, 0, perPage)

	for cursor.Next(m.ctx) {
		var document mongoSnapshot

		if err := cursor.Decode(&document); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, currencyRates.SnapshotWithID{
			Snapshot: currencyRates.Snapshot{
				RateRecord: currencyRates.RateRecord{
					Code:          document.Code,
					DisplayName:   document.Name,
					RateToUSD:     document.Rate,
					EffectiveDate: document.EffectiveDate,
				},
				CreatedAt: document.CreatedAt,
			},
			ID: document.ID,
		})
	}

	return snapshots, cursor.Err()
}

func (m mongoStorage) Drop() error {
	return m.collection.Drop(m.ctx)
}

func (m mongoStorage) Close() error {
	return m.client.Disconnect(m.ctx)
}

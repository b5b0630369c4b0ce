package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/malusev998/lari"
)

type (
	mongoStorage struct {
		ctx        context.Context
		client     *mongo.Client
		collection *mongo.Collection
	}

	mongoItem struct {
		Key       string    `bson:"_id"`
		Value     string    `bson:"value"`
		UpdatedAt time.Time `bson:"updatedAt"`
	}
)

func NewMongoStorage(config MongoDBConfig) (lari.Storage, error) {
	ctx := contextOrBackground(config.Ctx)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to mongodb")
	}

	st := NewMongoStorageFromCollection(ctx, client, client.Database(config.Database).Collection(config.Collection))

	if config.Migrate {
		if err := st.Migrate(); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	return st, nil
}

// NewMongoStorageFromCollection wraps an existing collection. The client is
// disconnected on Close when it is not nil.
func NewMongoStorageFromCollection(ctx context.Context, client *mongo.Client, collection *mongo.Collection) lari.Storage {
	return mongoStorage{
		ctx:        contextOrBackground(ctx),
		client:     client,
		collection: collection,
	}
}

func (m mongoStorage) Get(ctx context.Context, key string) (string, error) {
	var item mongoItem

	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&item)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrKeyNotFound
	}

	if err != nil {
		return "", errors.Wrapf(err, "get %s", key)
	}

	return item.Value, nil
}

func (m mongoStorage) Set(ctx context.Context, key, value string) error {
	item := mongoItem{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, item, options.Replace().SetUpsert(true))

	return errors.Wrapf(err, "set %s", key)
}

func (m mongoStorage) Delete(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})

	return errors.Wrapf(err, "delete %s", key)
}

// Migrate pings the server; the collection is created on first write and
// _id is already unique.
func (m mongoStorage) Migrate() error {
	if m.client == nil {
		return nil
	}

	return errors.Wrap(m.client.Ping(m.ctx, nil), "ping mongodb")
}

func (m mongoStorage) Drop() error {
	return errors.Wrap(m.collection.Drop(m.ctx), "drop collection")
}

func (m mongoStorage) Close() error {
	if m.client == nil {
		return nil
	}

	return m.client.Disconnect(m.ctx)
}

func (m mongoStorage) GetStorageProviderName() string {
	return string(lari.MongoDBProvider)
}

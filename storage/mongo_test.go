package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/storage"
)

func TestMongoStorage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Get", func(mt *mtest.T) {
		asserts := require.New(mt)
		st := storage.NewMongoStorageFromCollection(context.Background(), nil, mt.Coll)
		namespace := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(mtest.CreateCursorResponse(1, namespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: lari.KeyTotal},
			{Key: "value", Value: "18.37"},
		}))

		value, err := st.Get(context.Background(), lari.KeyTotal)
		asserts.NoError(err)
		asserts.Equal("18.37", value)
	})

	mt.Run("Get_Not_Found", func(mt *mtest.T) {
		asserts := require.New(mt)
		st := storage.NewMongoStorageFromCollection(context.Background(), nil, mt.Coll)
		namespace := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace, mtest.FirstBatch))

		_, err := st.Get(context.Background(), lari.KeyHistory)
		asserts.True(errors.Is(err, storage.ErrKeyNotFound))
	})

	mt.Run("Set_And_Delete", func(mt *mtest.T) {
		asserts := require.New(mt)
		st := storage.NewMongoStorageFromCollection(context.Background(), nil, mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		asserts.NoError(st.Set(context.Background(), lari.KeySelectedDate, "2024-01-05"))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		asserts.NoError(st.Delete(context.Background(), lari.KeySelectedDate))
	})

	mt.Run("Set_Error", func(mt *mtest.T) {
		asserts := require.New(mt)
		st := storage.NewMongoStorageFromCollection(context.Background(), nil, mt.Coll)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := st.Set(context.Background(), lari.KeyCurrency, `{"code":"USD","rate":2.7}`)
		asserts.Error(err)
		asserts.Contains(err.Error(), "set currency")
	})

	mt.Run("Without_Client", func(mt *mtest.T) {
		asserts := require.New(mt)
		st := storage.NewMongoStorageFromCollection(context.Background(), nil, mt.Coll)

		asserts.NoError(st.Migrate())
		asserts.NoError(st.Close())
		asserts.Equal("mongodb", st.GetStorageProviderName())
	})
}

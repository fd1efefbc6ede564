package repository_test

import (
	"contacts-web-server/config"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return &config.Database{DB: sqlx.NewDb(db, "postgres")}, mock
}

func newMiniRedis(t *testing.T) (*config.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return &config.RedisClient{Client: client}, server
}

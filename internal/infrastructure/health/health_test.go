package health

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-hexagonal-auth/internal/infrastructure/gormstore"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	s.calls++
	return s.err
}

func TestService_Ready(t *testing.T) {
	ctx := context.Background()

	t.Run("no checkers", func(t *testing.T) {
		assert.NoError(t, NewService().Ready(ctx))
	})

	t.Run("stops at first failure", func(t *testing.T) {
		boom := errors.New("down")
		ok := &stubChecker{name: "a"}
		bad := &stubChecker{name: "b", err: boom}
		skipped := &stubChecker{name: "c"}

		err := NewService(ok, bad, skipped).Ready(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)

		var ce *CheckError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "b", ce.Checker)
		assert.Equal(t, "b: down", err.Error())
		assert.Equal(t, 1, ok.calls)
		assert.Equal(t, 0, skipped.calls)
	})
}

func TestRedisChecker(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectPing().SetVal("PONG")
	c := NewRedisChecker(rdb)
	assert.Equal(t, "redis", c.Name())
	assert.NoError(t, c.Check(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, c.Check(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormChecker(t *testing.T) {
	db, err := gormstore.Open(gormstore.DialectSQLite, ":memory:")
	require.NoError(t, err)

	c := NewGormChecker(db)
	assert.Equal(t, "gorm", c.Name())
	assert.NoError(t, c.Check(context.Background()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, c.Check(context.Background()))
}

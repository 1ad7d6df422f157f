package unitofwork

import (
	"context"
	"os"
	"testing"
	"time"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/model"
	"ocbs-be/internal/repository/specification"
	"ocbs-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUnitOfWork(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Player{}, &model.Registration{}))

	ctx := context.Background()
	osuUserId := time.Now().UnixNano() % 1_000_000_000
	uow := NewRepositoryFactory(db).NewUnitOfWork(ctx)

	t.Cleanup(func() {
		db.Where("osu_user_id = ?", osuUserId).Delete(&model.Registration{})
		db.Where("osu_user_id = ?", osuUserId).Delete(&model.Player{})
	})

	t.Run("player upsert keeps one row per osu id", func(t *testing.T) {
		p := &entity.Player{ApiId: "first", OsuUserId: osuUserId, Username: "before", Token: []byte(`{}`)}
		require.NoError(t, uow.PlayerRepository().Upsert(ctx, p))

		p2 := &entity.Player{ApiId: "second", OsuUserId: osuUserId, Username: "after", Token: []byte(`{}`)}
		require.NoError(t, uow.PlayerRepository().Upsert(ctx, p2))

		n, err := uow.PlayerRepository().Count(ctx, specification.ByOsuUserId{OsuUserId: osuUserId})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		found, err := uow.PlayerRepository().FindOne(ctx, specification.ByApiId{ApiId: "second"})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "after", found.Username)
	})

	t.Run("registration rolls back with the transaction", func(t *testing.T) {
		require.NoError(t, uow.Begin(ctx))
		reg := &entity.Registration{
			Id:            uuid.New(),
			OsuUserId:     osuUserId,
			Username:      "after",
			Discord:       "after",
			Timezone:      "UTC",
			Status:        entity.RegistrationStatusRegistered,
			PaymentStatus: entity.PaymentStatusPending,
		}
		require.NoError(t, uow.RegistrationRepository().Create(ctx, reg))
		require.NoError(t, uow.Rollback())

		found, err := uow.RegistrationRepository().FindOne(ctx, specification.ByOsuUserId{OsuUserId: osuUserId})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

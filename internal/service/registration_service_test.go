package service

import (
	"context"
	"encoding/json"
	"testing"

	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistrationService(t *testing.T) (IRegistrationService, *fakeStore, *recordingPublisher) {
	t.Helper()
	store := newFakeStore()
	for _, p := range []entity.Player{
		{OsuUserId: 2, Username: "peppy"},
		{OsuUserId: 124493, Username: "Cookiezi"},
	} {
		p := p
		require.NoError(t, store.NewUnitOfWork(context.Background()).PlayerRepository().Upsert(context.Background(), &p))
	}
	pub := &recordingPublisher{}
	return NewRegistrationService(store, pub, nil, logger.NewNopLogger()), store, pub
}

func strPtr(s string) *string { return &s }

func TestRegisterCreatesPendingRegistration(t *testing.T) {
	svc, _, pub := newTestRegistrationService(t)

	res, err := svc.Register(context.Background(), 2, &dto.CreateRegistrationRequest{
		ContactEmail: strPtr("peppy@example.com"),
		Discord:      "peppy",
		Timezone:     "UTC+8",
	})
	require.NoError(t, err)

	assert.Equal(t, "peppy", res.Username)
	assert.Equal(t, "registered", res.Status)
	assert.Equal(t, "pending", res.PaymentStatus)

	require.Len(t, pub.payloads, 1)
	var msg dto.RegistrationCreatedMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, res.Id, msg.RegistrationId)
	assert.Equal(t, "peppy@example.com", msg.ContactEmail)
}

func TestRegisterWithoutEmailSkipsMail(t *testing.T) {
	svc, _, pub := newTestRegistrationService(t)

	_, err := svc.Register(context.Background(), 2, &dto.CreateRegistrationRequest{Discord: "peppy", Timezone: "UTC"})
	require.NoError(t, err)
	assert.Empty(t, pub.payloads)
}

func TestRegisterTwiceConflicts(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	req := &dto.CreateRegistrationRequest{Discord: "peppy", Timezone: "UTC"}

	_, err := svc.Register(context.Background(), 2, req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 2, req)
	assert.ErrorIs(t, err, entity.ErrRegistrationExists)
}

func TestRegisterUnknownPlayer(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)

	_, err := svc.Register(context.Background(), 999, &dto.CreateRegistrationRequest{Discord: "x", Timezone: "UTC"})
	assert.ErrorIs(t, err, entity.ErrPlayerNotFound)
}

func TestWithdrawAndRegisterAgain(t *testing.T) {
	svc, store, _ := newTestRegistrationService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, 2, &dto.CreateRegistrationRequest{Discord: "peppy", Timezone: "UTC"})
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw(ctx, 2))

	_, err = svc.Mine(ctx, 2)
	assert.ErrorIs(t, err, entity.ErrRegistrationNotFound)
	assert.ErrorIs(t, svc.Withdraw(ctx, 2), entity.ErrRegistrationNotFound)

	again, err := svc.Register(ctx, 2, &dto.CreateRegistrationRequest{Discord: "peppy2", Timezone: "UTC+1"})
	require.NoError(t, err)
	assert.Equal(t, first.Id, again.Id)
	assert.Equal(t, "peppy2", again.Discord)
	assert.Len(t, store.registrations, 1)
}

func TestListActiveHidesWithdrawn(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, 2, &dto.CreateRegistrationRequest{Discord: "peppy", Timezone: "UTC"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, 124493, &dto.CreateRegistrationRequest{Discord: "cookiezi", Timezone: "UTC+9"})
	require.NoError(t, err)
	require.NoError(t, svc.Withdraw(ctx, 2))

	list, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.PublicRegistrationResponse{
		{OsuUserId: 124493, Username: "Cookiezi", Timezone: "UTC+9"},
	}, list)
}

func TestUpdatePaymentStatus(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, 2, &dto.CreateRegistrationRequest{Discord: "peppy", Timezone: "UTC"})
	require.NoError(t, err)

	res, err := svc.UpdatePaymentStatus(ctx, reg.Id, &dto.UpdatePaymentStatusRequest{PaymentStatus: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", res.PaymentStatus)

	mine, err := svc.Mine(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "paid", mine.PaymentStatus)

	_, err = svc.UpdatePaymentStatus(ctx, uuid.New(), &dto.UpdatePaymentStatusRequest{PaymentStatus: "waived"})
	assert.ErrorIs(t, err, entity.ErrRegistrationNotFound)
}

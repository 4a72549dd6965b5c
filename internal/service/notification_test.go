package service_test

import (
	"context"
	"errors"
	"testing"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_Emit(t *testing.T) {
	ctx := context.Background()

	t.Run("StoreAndPush", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		pusher := &stubPusher{}
		svc := service.NewNotificationService(repo, pusher)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Notification).ID = 3
			}).Return(nil)

		svc.Emit(ctx, 11, domain.NotificationTypeWallet, "Contribution requested", "msg", "/link")
		assert.Equal(t, []int32{11}, pusher.pushed)
	})

	t.Run("StoreFailureParksForRetry", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		pusher := &stubPusher{}
		svc := service.NewNotificationService(repo, pusher)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).
			Return(errors.New("db down")).Once()

		// Emit must not fail or push even though the store did.
		svc.Emit(ctx, 11, domain.NotificationTypeWallet, "t", "m", "")
		assert.Empty(t, pusher.pushed)

		// Once the store recovers, the flush delivers the parked one.
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
		delivered := svc.FlushPending(ctx)
		assert.Equal(t, 1, delivered)
		assert.Equal(t, []int32{11}, pusher.pushed)
	})

	t.Run("FlushReparksFailures", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := service.NewNotificationService(repo, nil)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(errors.New("db down"))

		svc.Emit(ctx, 11, domain.NotificationTypeSystem, "t", "m", "")
		assert.Equal(t, 0, svc.FlushPending(ctx))

		// Still parked: a later flush retries it again.
		repo.ExpectedCalls = nil
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
		assert.Equal(t, 1, svc.FlushPending(ctx))
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ClampsPaging", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := service.NewNotificationService(repo, nil)

		repo.On("List", ctx, int32(11), int32(20), int32(0)).
			Return([]domain.Notification{{ID: 1, UserID: 11}}, int32(1), nil)

		notes, total, err := svc.List(ctx, 11, 0, 500)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, notes, 1)
	})
}

func TestNotificationService_Ownership(t *testing.T) {
	ctx := context.Background()
	note := &domain.Notification{ID: 3, UserID: 11}

	t.Run("MarkReadByOwner", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := service.NewNotificationService(repo, nil)

		repo.On("GetByID", ctx, int32(3)).Return(note, nil)
		repo.On("MarkRead", ctx, int32(3)).Return(nil)

		assert.NoError(t, svc.MarkRead(ctx, 11, 3))
	})

	t.Run("MarkReadByStranger", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := service.NewNotificationService(repo, nil)

		repo.On("GetByID", ctx, int32(3)).Return(note, nil)

		assert.ErrorIs(t, svc.MarkRead(ctx, 99, 3), domain.ErrForbidden)
		repo.AssertNotCalled(t, "MarkRead")
	})

	t.Run("DeleteByStranger", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := service.NewNotificationService(repo, nil)

		repo.On("GetByID", ctx, int32(3)).Return(note, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 99, 3), domain.ErrForbidden)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestNotificationService_BulkOps(t *testing.T) {
	ctx := context.Background()

	t.Run("MarkAllRead", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := service.NewNotificationService(repo, nil)
		repo.On("MarkAllRead", ctx, int32(11)).Return(int64(4), nil)

		n, err := svc.MarkAllRead(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("ClearRead", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := service.NewNotificationService(repo, nil)
		repo.On("DeleteRead", ctx, int32(11)).Return(int64(2), nil)

		n, err := svc.ClearRead(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}

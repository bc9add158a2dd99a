package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	"grandhotel/infras/otel/mocks"
	guestMocks "grandhotel/internal/domains/guest/mocks"
	"grandhotel/internal/domains/guest/model"
	"grandhotel/internal/domains/guest/model/dto"
	"grandhotel/internal/domains/guest/service"
	cacheMocks "grandhotel/shared/cache/mocks"
	"grandhotel/shared/failure"
)

func newGuestService(ctrl *gomock.Controller) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestGuestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.CreateGuestRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@email.com",
		Phone:     "+1234567890",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(ctrl)

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "john@email.com").Return(model.Guest{}, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(9), nil)
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, int64(9), res.ID)
		assert.Equal(t, "john@email.com", res.Email)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(ctrl)

		mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "john@email.com").
			Return(model.Guest{ID: 9, Email: "john@email.com"}, nil)

		_, err := svc.Create(context.Background(), req)

		assert.True(t, failure.HasCode(err, http.StatusConflict))
	})
}

func TestGuestService_FindOrCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.CreateGuestRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "John@Email.com",
		Phone:     "+1234567890",
	}

	t.Run("reuses the existing profile", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(ctrl)

		existing := model.Guest{ID: 9, FirstName: "Johnny", Email: "john@email.com"}
		mockRepo.EXPECT().FindByEmail(gomock.Any(), "John@Email.com").Return(existing, nil)

		res, err := svc.FindOrCreate(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, existing, res)
	})

	t.Run("creates a profile when the email is unknown", func(t *testing.T) {
		svc, mockRepo, mockCache := newGuestService(ctrl)

		mockRepo.EXPECT().FindByEmail(gomock.Any(), "John@Email.com").Return(model.Guest{}, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(10), nil)
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.FindOrCreate(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), res.ID)
		assert.Equal(t, "John", res.FirstName)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(ctrl)

		mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "John@Email.com").
			Return(model.Guest{}, errors.New("database error"))

		_, err := svc.FindOrCreate(context.Background(), req)

		assert.Error(t, err)
	})
}

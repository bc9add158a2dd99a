package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	"grandhotel/infras/jwt"
	jwtMocks "grandhotel/infras/jwt/mocks"
	"grandhotel/infras/otel/mocks"
	"grandhotel/shared/cache"
	cacheMocks "grandhotel/shared/cache/mocks"
	"grandhotel/shared/constant"
	"grandhotel/transport/http/middleware"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRouter := func(mockJWT *jwtMocks.MockJWT) (chi.Router, *string) {
		cfg := &config.Config{}
		mw := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), nil, cfg)

		var seenUserID string

		r := chi.NewRouter()
		r.Use(mw.Auth)
		r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
			seenUserID, _ = req.Context().Value(constant.ContextKeyUserID).(string)
			w.WriteHeader(http.StatusOK)
		})

		return r, &seenUserID
	}

	tests := []struct {
		name       string
		authHeader string
		setupMock  func(mockJWT *jwtMocks.MockJWT)
		wantStatus int
		wantUserID string
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			setupMock:  func(mockJWT *jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			authHeader: "Token abc",
			setupMock:  func(mockJWT *jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid access token populates the request context",
			authHeader: "Bearer valid-token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					ValidateToken("valid-token", jwt.AccessToken).
					Return(&jwt.Claims{
						UserID:  "user-id-123",
						Email:   "test@example.com",
						Role:    constant.RoleStaff,
						TokenID: "token-id-123",
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantUserID: "user-id-123",
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired-token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					ValidateToken("expired-token", jwt.AccessToken).
					Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockJWT := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(mockJWT)

			router, seenUserID := newRouter(mockJWT)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.authHeader)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantUserID != "" {
				assert.Equal(t, tt.wantUserID, *seenUserID)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Key derived from client IP and user agent.
	const wantKey = "limiter:10.0.0.1:tester"

	newRouter := func(enable bool, mockCache *cacheMocks.MockRedisCache) chi.Router {
		cfg := &config.Config{}
		cfg.App.RateLimiter.Enable = enable
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)

		r := chi.NewRouter()
		r.Use(mw.RateLimit())
		r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		return r
	}

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1")
		req.Header.Set(constant.RequestHeaderUserAgent, "tester")

		return req
	}

	t.Run("disabled limiter passes through", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		router := newRouter(false, mockCache)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request in the window is counted and allowed", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), wantKey, gomock.Any()).
			Return(cache.Nil)
		mockCache.EXPECT().
			Save(gomock.Any(), wantKey, 1, 60).
			Return(nil)

		router := newRouter(true, mockCache)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("request over the limit is rejected", func(t *testing.T) {
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), wantKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				count, ok := value.(*int)
				if assert.True(t, ok) {
					*count = 2
				}

				return nil
			})

		router := newRouter(true, mockCache)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

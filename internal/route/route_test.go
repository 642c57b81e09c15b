package route

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appcontext "github.com/hebatacademy/certify/internal/app_context"
	"github.com/hebatacademy/certify/internal/auth"
	"github.com/hebatacademy/certify/internal/config"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/controller"
	"github.com/hebatacademy/certify/internal/middleware"
	ratelimiter "github.com/hebatacademy/certify/internal/rate_limiter"
	"github.com/hebatacademy/certify/internal/util"
)

func newTestRouter() (*gin.Engine, auth.JWTInterface) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{}
	logger := util.NewLogger()
	jwtService := auth.NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, logger)

	app := &appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		JWTService: jwtService,
	}

	m := middleware.NewMiddleware(app, ratelimiter.NewRateLimiter(cfg.RateLimiter, logger))
	c := controller.NewController(app)

	r := gin.New()
	api := r.Group("/api")
	V1_Trainers(api, c.Trainer, m)

	return r, jwtService
}

func TestTrainerRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter()

	for _, path := range []string{"/api/v1/trainers", "/api/v1/trainers/some-id"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without a token: expected %d, got %d", path, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestTrainerCreateRequiresAdminRole(t *testing.T) {
	r, jwtService := newTestRouter()

	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:    "u1",
		Email: "trainer@hebat.id",
		Role:  constant.UserRoleTrainer,
	})
	if err != nil {
		t.Fatalf("Token generation failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trainers", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+*accessToken)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("POST /api/v1/trainers as trainer: expected %d, got %d", http.StatusForbidden, w.Code)
	}
}

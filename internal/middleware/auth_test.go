package middleware

import (
  "context"
  "fmt"
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/gin-gonic/gin"
  "go.uber.org/zap"

  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/requestdata"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type stubAuthService struct {
  wantToken string
  rd        *requestdata.RequestData
}

func (s *stubAuthService) Register(ctx context.Context, nickname, password, userType string) error {
  return nil
}

func (s *stubAuthService) Login(ctx context.Context, nickname, password string) (string, string, error) {
  return "", "", nil
}

func (s *stubAuthService) Refresh(ctx context.Context) (string, string, error) {
  return "", "", nil
}

func (s *stubAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString != s.wantToken {
    return ctx, fmt.Errorf("invalid or expired JWT token")
  }
  return requestdata.WithRequestData(ctx, s.rd), nil
}

func (s *stubAuthService) GetAccessTTL() time.Duration {
  return time.Hour
}

func newAuthRouter(svc *stubAuthService, captured **requestdata.RequestData) *gin.Engine {
  gin.SetMode(gin.TestMode)
  log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
  am := NewAuthMiddleware(log, svc)
  r := gin.New()
  r.GET("/protected", am.RequireAuth(), func(c *gin.Context) {
    *captured = requestdata.GetRequestData(c.Request.Context())
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
  })
  return r
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
  var captured *requestdata.RequestData
  r := newAuthRouter(&stubAuthService{wantToken: "good"}, &captured)

  w := httptest.NewRecorder()
  r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("status: got=%d want=%d", w.Code, http.StatusUnauthorized)
  }
  if captured != nil {
    t.Fatalf("handler must not run without a token")
  }
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
  var captured *requestdata.RequestData
  r := newAuthRouter(&stubAuthService{wantToken: "good"}, &captured)

  req := httptest.NewRequest(http.MethodGet, "/protected", nil)
  req.Header.Set("Authorization", "Bearer bad")
  w := httptest.NewRecorder()
  r.ServeHTTP(w, req)
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("status: got=%d want=%d", w.Code, http.StatusUnauthorized)
  }
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
  var captured *requestdata.RequestData
  svc := &stubAuthService{
    wantToken: "good",
    rd:        &requestdata.RequestData{UserID: 3, UserType: types.UserTypeOwner, Nickname: "sajang"},
  }
  r := newAuthRouter(svc, &captured)

  req := httptest.NewRequest(http.MethodGet, "/protected", nil)
  req.Header.Set("Authorization", "Bearer good")
  w := httptest.NewRecorder()
  r.ServeHTTP(w, req)
  if w.Code != http.StatusOK {
    t.Fatalf("status: got=%d want=%d body=%s", w.Code, http.StatusOK, w.Body.String())
  }
  if captured == nil || captured.UserID != 3 || captured.Nickname != "sajang" {
    t.Fatalf("request data not propagated: %+v", captured)
  }
}

func TestRequireAuthAcceptsQueryToken(t *testing.T) {
  var captured *requestdata.RequestData
  svc := &stubAuthService{
    wantToken: "good",
    rd:        &requestdata.RequestData{UserID: 3, UserType: types.UserTypeOwner, Nickname: "sajang"},
  }
  r := newAuthRouter(svc, &captured)

  w := httptest.NewRecorder()
  r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?token=good", nil))
  if w.Code != http.StatusOK {
    t.Fatalf("status: got=%d want=%d body=%s", w.Code, http.StatusOK, w.Body.String())
  }
  if captured == nil || captured.UserID != 3 {
    t.Fatalf("request data not propagated: %+v", captured)
  }
}

func TestRequireAuthRejectsEmptyIdentity(t *testing.T) {
  var captured *requestdata.RequestData
  svc := &stubAuthService{
    wantToken: "good",
    rd:        &requestdata.RequestData{UserID: 0},
  }
  r := newAuthRouter(svc, &captured)

  w := httptest.NewRecorder()
  r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?token=good", nil))
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("status: got=%d want=%d", w.Code, http.StatusUnauthorized)
  }
  if captured != nil {
    t.Fatalf("handler must not run for an empty identity")
  }
}

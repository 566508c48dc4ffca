package services

import (
  "context"
  "fmt"
  "strconv"
  "strings"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"

  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/repos"
  "github.com/hansik-dev/menuboard-backend/internal/requestdata"
  "github.com/hansik-dev/menuboard-backend/internal/types"
)

type JWTClaims struct {
  jwt.RegisteredClaims
}

type AuthService interface {
  Register(ctx context.Context, nickname, password, userType string) error
  Login(ctx context.Context, nickname, password string) (string, string, error)
  Refresh(ctx context.Context) (string, string, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  userTokenRepo repos.UserTokenRepo
  jwtSecretKey  string
  accessTTL     time.Duration
  refreshTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  userTokenRepo repos.UserTokenRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  return &authService{
    db:            db,
    log:           baseLog.With("service", "AuthService"),
    userRepo:      userRepo,
    userTokenRepo: userTokenRepo,
    jwtSecretKey:  jwtSecretKey,
    accessTTL:     accessTTL,
    refreshTTL:    refreshTTL,
  }
}

func (as *authService) Register(ctx context.Context, nickname, password, userType string) error {
  nickname = strings.TrimSpace(nickname)
  if nickname == "" {
    return fmt.Errorf("a nickname is required to register")
  }
  if password == "" {
    return fmt.Errorf("a password is required to register")
  }
  if userType == "" {
    userType = types.UserTypeCustomer
  }
  if userType != types.UserTypeOwner && userType != types.UserTypeCustomer {
    return fmt.Errorf("unknown account type %q", userType)
  }

  exists, err := as.userRepo.NicknameExists(ctx, nil, nickname)
  if err != nil {
    return fmt.Errorf("failed to check nickname: %w", err)
  }
  if exists {
    return fmt.Errorf("nickname is already in use")
  }

  hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    return fmt.Errorf("failed to hash password: %w", err)
  }

  user := &types.User{
    Nickname: nickname,
    Password: string(hashed),
    Type:     userType,
  }
  if _, err := as.userRepo.Create(ctx, nil, user); err != nil {
    return fmt.Errorf("failed to create user: %w", err)
  }
  return nil
}

func (as *authService) Login(ctx context.Context, nickname, password string) (string, string, error) {
  nickname = strings.TrimSpace(nickname)
  if nickname == "" || password == "" {
    return "", "", fmt.Errorf("nickname and password are required to login")
  }

  user, err := as.userRepo.GetByNickname(ctx, nil, nickname)
  if err != nil {
    return "", "", fmt.Errorf("error retrieving user by nickname: %w", err)
  }
  if user == nil {
    return "", "", fmt.Errorf("invalid nickname")
  }
  if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
    return "", "", fmt.Errorf("invalid password")
  }

  var accessToken string
  var refreshToken string
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    // A fresh login invalidates whatever tokens the account still holds.
    if err := as.userTokenRepo.DeleteByUserID(ctx, tx, user.ID); err != nil {
      return fmt.Errorf("failed to clear existing tokens: %w", err)
    }

    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("generate access token error: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := &types.UserToken{
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, err := as.userTokenRepo.Create(ctx, tx, userToken); err != nil {
      return fmt.Errorf("create user token error: %w", err)
    }
    return nil
  }); err != nil {
    return "", "", err
  }
  return accessToken, refreshToken, nil
}

func (as *authService) Refresh(ctx context.Context) (string, string, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return "", "", ErrNotAuthenticated
  }
  if rd.RefreshToken == "" {
    return "", "", fmt.Errorf("refresh token not found in request context")
  }

  var accessToken string
  var newRefreshToken string
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    existing, err := as.userTokenRepo.GetByRefreshToken(ctx, tx, rd.RefreshToken)
    if err != nil {
      return fmt.Errorf("error fetching refresh token: %w", err)
    }
    if existing == nil {
      return fmt.Errorf("unknown refresh token")
    }
    if existing.ExpiresAt.Before(time.Now()) {
      if err := as.userTokenRepo.DeleteByID(ctx, tx, existing.ID); err != nil {
        return fmt.Errorf("refresh token expired, error deleting: %w", err)
      }
      return fmt.Errorf("refresh token expired")
    }

    user, err := as.userRepo.GetByID(ctx, tx, existing.UserID)
    if err != nil {
      return fmt.Errorf("failed to load user for refresh: %w", err)
    }
    if user == nil {
      return fmt.Errorf("no user found for the given refresh token")
    }

    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("failed to generate new access token: %w", genErr)
    }
    accessToken = tok
    newRefreshToken = uuid.New().String()
    newUserToken := &types.UserToken{
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: newRefreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, err := as.userTokenRepo.Create(ctx, tx, newUserToken); err != nil {
      return fmt.Errorf("failed to create new user token: %w", err)
    }
    if err := as.userTokenRepo.DeleteByID(ctx, tx, existing.ID); err != nil {
      return fmt.Errorf("failed to remove old refresh token: %w", err)
    }
    return nil
  })
  if err != nil {
    return "", "", err
  }
  return accessToken, newRefreshToken, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  claims := JWTClaims{
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   strconv.FormatUint(uint64(user.ID), 10),
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, fmt.Errorf("missing token")
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, fmt.Errorf("failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, fmt.Errorf("invalid or expired JWT token")
  }
  userID, err := strconv.ParseUint(claims.Subject, 10, 64)
  if err != nil {
    return ctx, fmt.Errorf("invalid user id in token: %w", err)
  }

  user, err := as.userRepo.GetByID(ctx, nil, uint(userID))
  if err != nil {
    return ctx, fmt.Errorf("failed to load account for token: %w", err)
  }
  if user == nil {
    return ctx, fmt.Errorf("account for token no longer exists")
  }

  // The access token must still be on file; a login or refresh elsewhere
  // revokes it server side.
  tokenRow, err := as.userTokenRepo.GetByAccessToken(ctx, nil, tokenString)
  if err != nil {
    return ctx, fmt.Errorf("failed to fetch user token: %w", err)
  }
  if tokenRow == nil {
    return ctx, fmt.Errorf("token has been revoked")
  }

  rd := &requestdata.RequestData{
    TokenString:  tokenString,
    RefreshToken: tokenRow.RefreshToken,
    UserID:       user.ID,
    UserType:     user.Type,
    Nickname:     user.Nickname,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}

package app

import (
  "time"

  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/utils"
)

type Config struct {
  Port            string
  Environment     string
  JWTSecretKey    string
  AccessTokenTTL  time.Duration
  RefreshTokenTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
  port := utils.GetEnv("PORT", "8080", log)
  environment := utils.GetEnv("APP_ENV", "development", log)
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  return Config{
    Port:            port,
    Environment:     environment,
    JWTSecretKey:    jwtSecretKey,
    AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
    RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
  }
}

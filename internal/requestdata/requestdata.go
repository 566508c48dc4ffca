package requestdata

import (
  "context"
)

var requestDataKey = struct{}{}

// RequestData is the authenticated caller identity carried on the request
// context once the auth middleware has validated a token.
type RequestData struct {
  TokenString   string
  RefreshToken  string
  UserID        uint
  UserType      string
  Nickname      string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
  return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
  val := ctx.Value(requestDataKey)
  if rd, ok := val.(*RequestData); ok {
    return rd
  }
  return nil
}

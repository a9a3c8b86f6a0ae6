package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/binary"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/jevliu/learning-platform/internal/config"
)

// captureWriter captures response body/status while forwarding to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }

func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.limit <= 0 || cw.size < cw.limit {
        remain := cw.limit - cw.size
        if cw.limit <= 0 {
            cw.buf.Write(b)
        } else if remain > 0 {
            if int64(len(b)) <= remain {
                cw.buf.Write(b)
            } else {
                cw.buf.Write(b[:remain])
            }
        }
        cw.size += int64(len(b))
    }
    return cw.ResponseWriter.Write(b)
}

// cacheKeyFrom builds a stable key from method, registered route and query.
// The list endpoints serve the same payload to every authenticated user, so
// identity is deliberately not part of the key.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
    r := c.Request()
    tail := r.Method + ":" + c.Path() + ":" + r.URL.RawQuery
    sum := sha1.Sum([]byte(tail))
    return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// encodePayload packs: [4 bytes status][body]
func encodePayload(status int, body []byte) []byte {
    out := make([]byte, 4+len(body))
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    copy(out[4:], body)
    return out
}

func decodePayload(bs []byte) (status int, body []byte, ok bool) {
    if len(bs) < 4 {
        return 0, nil, false
    }
    return int(binary.BigEndian.Uint32(bs[0:4])), bs[4:], true
}

// NewRedisCache returns a middleware caching successful JSON responses of
// the configured methods for a short TTL. When caching is disabled or no
// Redis client is available it degrades to a pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return func(c echo.Context) error { return next(c) } }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 15 * time.Second
    }
    maxBody := int64(cfg.MaxBodyBytes)

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKeyFrom(cfg, c)

            // Try get from Redis
            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
                if status, body, ok := decodePayload(bs); ok {
                    c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(status)
                    if len(body) > 0 {
                        _, _ = c.Response().Write(body)
                    }
                    return nil
                }
            }

            // Miss: capture
            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            // Only 200 bodies are cached; oversized bodies were truncated by
            // the writer and must not be stored.
            if cw.status == http.StatusOK && (maxBody <= 0 || cw.size <= maxBody) {
                _ = rdb.SetEx(context.Background(), key, encodePayload(cw.status, cw.buf.Bytes()), ttl).Err()
            }
            return nil
        }
    }
}

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajkrish0608/WorkProof/internal/constants"
	apierrors "github.com/rajkrish0608/WorkProof/internal/errors"
	"go.uber.org/zap"
)

// Sent while an earlier request with the same key is still running.
const idempotencyInFlightMessage = "A request with this Idempotency-Key is already in progress"

// IdempotencyStore keeps replayable responses.
type IdempotencyStore interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX stores value only when key is absent and reports whether it did.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type cachedResponse struct {
	Pending     bool   `json:"pending,omitempty"`
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

var pendingMarker, _ = json.Marshal(cachedResponse{Pending: true})

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a request repeats an
// Idempotency-Key within the same organization. Only 2xx responses are stored.
// The key is reserved before the handler runs, so a concurrent duplicate gets
// 409 instead of running twice. Must run after RequireAuth. Store errors never
// fail the request.
func Idempotency(store IdempotencyStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(constants.IdempotencyHeader)
		identity, ok := GetIdentity(c)
		if key == "" || !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := identity.OrgID + ":" + key

		if replay(c, store, cacheKey, logger) {
			return
		}

		reserved, err := store.SetNX(ctx, cacheKey, pendingMarker, constants.IdempotencyLockTTL)
		if err != nil {
			logger.Error("idempotency reserve failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !reserved {
			// Another request took the key between the lookup and the reservation.
			if !replay(c, store, cacheKey, logger) {
				apierrors.Conflict(c, idempotencyInFlightMessage)
			}
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		// The request context may already be cancelled once the handler returns.
		storeCtx := context.WithoutCancel(ctx)

		status := writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			if err := store.Delete(storeCtx, cacheKey); err != nil {
				logger.Error("idempotency release failed", zap.String("key", key), zap.Error(err))
			}
			return
		}

		data, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err != nil {
			logger.Error("idempotency encode failed", zap.Error(err))
			return
		}
		if err := store.SetBytes(storeCtx, cacheKey, data, constants.IdempotencyTTL); err != nil {
			logger.Error("idempotency store failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// replay answers from the store when the key holds a finished response, or
// with 409 when the key is reserved by a request still in flight.
func replay(c *gin.Context, store IdempotencyStore, cacheKey string, logger *zap.Logger) bool {
	cached, found, err := store.GetBytes(c.Request.Context(), cacheKey)
	if err != nil {
		logger.Error("idempotency lookup failed", zap.String("key", cacheKey), zap.Error(err))
		return false
	}
	if !found {
		return false
	}

	var resp cachedResponse
	if err := json.Unmarshal(cached, &resp); err != nil {
		logger.Error("idempotency entry unreadable", zap.String("key", cacheKey))
		return false
	}
	if resp.Pending {
		apierrors.Conflict(c, idempotencyInFlightMessage)
		return true
	}

	logger.Info("replaying idempotent response", zap.String("key", cacheKey))
	c.Header("Idempotent-Replayed", "true")
	c.Data(resp.Status, resp.ContentType, resp.Body)
	c.Abort()
	return true
}

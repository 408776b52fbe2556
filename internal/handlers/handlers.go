package handlers

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rajkrish0608/WorkProof/internal/constants"
	apierrors "github.com/rajkrish0608/WorkProof/internal/errors"
	"github.com/rajkrish0608/WorkProof/internal/middleware"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"go.uber.org/zap"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request structs.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("yyyymmdd", validateCalendarDate)
		}
	})
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constants.DateLayout, fl.Field().String())
	return err == nil
}

// requireIdentity fetches the caller or answers 401.
func requireIdentity(c *gin.Context) (services.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
	}
	return identity, ok
}

// internalError logs the cause and answers a generic 500.
func internalError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	_ = c.Error(err)
	apierrors.InternalError(c, "")
}

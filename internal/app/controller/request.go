package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/service"
	apperrors "github.com/featherwood/featherwood-backend/internal/errors"
	"github.com/featherwood/featherwood-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// OwnerRequest identifies a cart owner in a JSON body.
type OwnerRequest struct {
	UserID    *uint   `json:"user_id"`
	SessionID *string `json:"session_id"`
}

func (r OwnerRequest) Owner() model.Owner {
	return model.Owner{UserID: r.UserID, SessionID: r.SessionID}
}

// parseInt64Query returns nil when key is absent or blank.
func parseInt64Query(c *gin.Context, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer amount in minor units", key)
	}
	return &v, nil
}

// parseLimitQuery returns 0 when key is absent.
func parseLimitQuery(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return v, nil
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return uint(v), nil
}

func parseUserIDQuery(c *gin.Context) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Query("user_id")), 10, 32)
	if err != nil || v == 0 {
		return 0, errors.New("user_id must be a positive integer")
	}
	return uint(v), nil
}

// ownerFromQuery reads user_id or session_id. Validation of the pair is
// left to the service so both paths report the same errors.
func ownerFromQuery(c *gin.Context) (model.Owner, error) {
	var owner model.Owner
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		userID, err := parseUserIDQuery(c)
		if err != nil {
			return owner, err
		}
		owner.UserID = &userID
	}
	if sessionID := strings.TrimSpace(c.Query("session_id")); sessionID != "" {
		owner.SessionID = &sessionID
	}
	return owner, nil
}

// respondError logs err at a level matching its status and writes the
// error body.
func respondError(c *gin.Context, err error, context string) {
	log := middleware.GetLoggerFromContext(c)

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		log.Warn("Rejected invalid input", map[string]interface{}{
			"context": context,
			"fields":  verr.Fields,
		})
		apperrors.RespondWithValidationError(c, verr.Fields)
		return
	}

	info := apperrors.ParseError(err, context)
	if info.Status >= 500 {
		log.Error("Request failed", err, map[string]interface{}{
			"context": context,
		})
	} else {
		log.Warn("Request rejected", map[string]interface{}{
			"context": context,
			"code":    info.Code,
			"error":   err.Error(),
		})
	}
	apperrors.RespondWithError(c, info.Status, info.Code, info.Message)
}

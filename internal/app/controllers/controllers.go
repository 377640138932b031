package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
)

// parseID reads the :id path parameter. A missing, malformed or
// non-positive id is reported as not found, since no such row can exist.
func parseID(ctx *gin.Context, kind string) (int64, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s id %q: %w", kind, raw, apperrors.ErrResourceNotFound)
	}
	return id, nil
}

// bindError wraps a form or JSON binding failure as a bad request
func bindError(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/middleware"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
	"startup-nexus.backend/pkg/utils"
)

// paramID parses a uuid path parameter, writing a 400 when it is malformed.
func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// actor returns the authenticated caller, writing a 401 when there is none.
func actor(c *gin.Context) (usecases.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return usecases.Actor{}, false
	}
	return a, true
}

// pagination reads page and limit. limit=0 returns everything.
func pagination(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return utils.GetPaginationParams(page, limit)
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

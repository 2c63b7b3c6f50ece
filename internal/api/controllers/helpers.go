package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"globetrotter/pkg/utils"
)

// currentUserID reads the id set by the JWT middleware. On failure it has
// already written a 401.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Missing or invalid user")
		return uuid.Nil, false
	}
	return id, true
}

func bindError(c *gin.Context, err error) {
	utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
}

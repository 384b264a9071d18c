package handlers

import (
	"strings"

	"quote_service/internal/domain/entities"
	"quote_service/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// sessionFromRequest reads the caller identity forwarded by the gateway. A
// missing role defaults to buyer; an unknown role leaves the session without
// one, which the use cases reject where a role matters.
//
// The token is not verified here. Authorization, X-User-ID and X-User-Role are
// only trusted when an upstream gateway has authenticated the token and
// overwritten any client-supplied values, so the service must not be exposed
// directly.
func sessionFromRequest(c *gin.Context) entities.Session {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	} else {
		token = ""
	}

	role := entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(headerUserRole))))
	switch role {
	case "":
		role = entities.RoleBuyer
	case entities.RoleBuyer, entities.RoleVendor, entities.RoleAdmin:
	default:
		role = ""
	}

	return entities.Session{
		UserID: strings.TrimSpace(c.GetHeader(headerUserID)),
		Role:   role,
		Token:  token,
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

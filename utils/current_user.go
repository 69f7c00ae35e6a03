package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LaibaTARIQ-20/Backend/models"
)

// CurrentUser returns the authenticated user that the auth middleware
// attached to the request context.
func CurrentUser(c *gin.Context) (models.User, error) {
	value, exists := c.Get("user")
	if !exists {
		return models.User{}, errors.New("user does not exist in the context")
	}
	user, ok := value.(models.User)
	if !ok {
		return models.User{}, errors.New("unable to retrieve user from context")
	}
	return user, nil
}

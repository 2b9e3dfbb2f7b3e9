package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/mirador-app/mirador/board/users"
)

// Account returns the account management view model for the signed
// user: linked login providers and two factor state.
func Account(c *gin.Context) {
	usr := c.MustGet("user").(users.User)

	c.JSON(200, users.Account(usr))
}

package http

import (
	"strings"

	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mirador-app/mirador/board/users"
	"github.com/mirador-app/mirador/core/config"
	"github.com/mirador-app/mirador/deps"
	"github.com/satori/go.uuid"
	"gopkg.in/mgo.v2/bson"
)

// SiteMiddleware exposes the runtime site params to every handler and
// template.
func SiteMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		site := config.C.Params().Site
		c.Set("siteName", site.Name)
		c.Set("siteUrl", site.Url)
		c.Next()
	}
}

// SessionMiddleware guarantees a session id for every visitor, kept
// in the cookie session across requests.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := sessions.Default(c)

		sid, _ := bucket.Get("session_id").(string)
		if sid == "" {
			sid = uuid.NewV4().String()
			bucket.Set("session_id", sid)
			bucket.Save()
		}

		// Use same session id anywhere
		c.Set("session_id", sid)
		c.Next()
	}
}

// Authorization decodes the bearer token, if present, and leaves the
// signed user id in the context for further use.
func Authorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		secret, err := deps.Container.Config().String("application.secret")
		if err != nil {
			panic(err)
		}

		claims, err := users.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.JSON(401, gin.H{"status": "error", "message": "Token expired or not valid."})
			c.AbortWithStatus(401)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// NeedAuthorization aborts requests that did not carry a valid token.
func NeedAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, signed := c.Get("user_id"); !signed {
			c.JSON(401, gin.H{"status": "error", "message": "Sign in required."})
			c.AbortWithStatus(401)
			return
		}

		c.Next()
	}
}

// UserMiddleware loads signed user data for further use.
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.MustGet("user_id").(string)
		if bson.IsObjectIdHex(sid) == false {
			c.AbortWithStatus(401)
			return
		}

		usr, err := users.FindId(deps.Container, bson.ObjectIdHex(sid))
		if err != nil {
			c.AbortWithError(500, err)
			return
		}

		c.Set("user", usr)
		c.Next()
	}
}

package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/mirador-app/mirador/board/users"
	"github.com/mirador-app/mirador/deps"
)

func HomePage(c *gin.Context) {
	c.Header("Content-Type", "text/html")
	c.HTML(200, "pages/home.html", gin.H{
		"title": c.MustGet("siteName"),
	})
}

func AboutPage(c *gin.Context) {
	c.Header("Content-Type", "text/html")
	c.HTML(200, "pages/about.html", gin.H{
		"title": "About",
	})
}

func ContactPage(c *gin.Context) {
	c.Header("Content-Type", "text/html")
	c.HTML(200, "pages/contact.html", gin.H{
		"title": "Contact",
	})
}

func UserPage(c *gin.Context) {
	usr, err := users.FindUserNameSlug(deps.Container, c.Param("username"))
	if err != nil {
		c.JSON(404, gin.H{"status": "error", "message": "User not found."})
		return
	}

	c.Header("Content-Type", "text/html")
	c.HTML(200, "pages/profile.html", gin.H{
		"title":   usr.UserName,
		"profile": usr.Profile(),
	})
}

package api

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mirador-app/mirador/board/sitemap"
	"github.com/mirador-app/mirador/core/config"
	chttp "github.com/mirador-app/mirador/core/http"
	"github.com/mirador-app/mirador/deps"
	"github.com/mirador-app/mirador/modules/api/controller"
)

type Module struct {
	Sitemap *sitemap.Assembler
}

func (module *Module) Run(bindTo string) {
	environment, err := deps.Container.Config().String("environment")
	if err != nil {
		panic(err)
	}

	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Session storage
	secret, err := deps.Container.Config().String("application.secret")
	if err != nil {
		panic(err)
	}

	store := sessions.NewCookieStore([]byte(secret))
	templates, err := deps.Container.Config().String("application.templates")
	if err != nil {
		panic(err)
	}

	router := gin.Default()
	router.SetFuncMap(template.FuncMap{
		"config": func(key string) string {
			return deps.Container.Config().UString(key, fmt.Sprintf("[Fatal error] Cannot get config with key %s", key))
		},
		"site": func() interface{} {
			return config.C.Params().Site
		},
	})
	router.LoadHTMLGlob(templates)

	// Middlewares setup
	router.Use(sessions.Sessions("session", store))
	router.Use(chttp.SessionMiddleware())
	router.Use(chttp.SiteMiddleware())

	/**
	 * Routes section.
	 * - All route definitions will go below this point.
	 */
	router.Static("/assets", "./static/public")
	router.StaticFile("/robots.txt", "./static/public/robots.txt")

	router.GET("/", controller.HomePage)
	router.GET("/about", controller.AboutPage)
	router.GET("/contact", controller.ContactPage)
	router.GET("/u/:username", controller.UserPage)

	sitemaps := controller.Sitemap{Assembler: module.Sitemap}
	router.GET("/sitemap.xml", sitemaps.GetSitemap)

	authorized := router.Group("")
	authorized.Use(chttp.Authorization())
	authorized.Use(chttp.NeedAuthorization())
	authorized.Use(chttp.UserMiddleware())
	authorized.GET("/account", controller.Account)

	router.Run(bindTo)
}

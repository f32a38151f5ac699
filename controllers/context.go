package controllers

import (
	"microblog/config"
	"microblog/mail"
	"microblog/verify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/jinzhu/gorm"
)

// App bundles everything the handlers need: configuration, the user store
// and the outbound collaborators. It is constructed once in main and
// injected into every request, so tests can build isolated instances
// without process-wide state.
type App struct {
	Config   config.Configuration
	DB       *gorm.DB
	Mailer   mail.Mailer
	Verifier verify.Verifier
	Sessions sessions.Store
}

func NewApp(conf config.Configuration, db *gorm.DB, mailer mail.Mailer, verifier verify.Verifier) *App {
	return &App{
		Config:   conf,
		DB:       db,
		Mailer:   mailer,
		Verifier: verifier,
		Sessions: sessions.NewCookieStore([]byte(conf.Security.SessionSecret)),
	}
}

const appKey = "app"

// SetAppToContext makes the application context available to handlers.
// Use this middleware in the gin setup.
func SetAppToContext(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(appKey, app)
		c.Next()
	}
}

func AppInstance(c *gin.Context) *App {
	v, ok := c.Get(appKey)
	if !ok {
		return nil
	}
	app, _ := v.(*App)
	return app
}

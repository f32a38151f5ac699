package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// render draws an HTML template with the pending flash messages and the
// logged user merged into data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := getSession(c)
	if flashes := sess.Flashes(); len(flashes) > 0 {
		saveSession(c, sess) // reading flashes consumes them
		data["Flashes"] = flashes
	}

	if user, ok := GetUserLogged(c); ok {
		data["CurrentUser"] = user
	}

	c.HTML(status, name, data)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// NotFound renders the 404 page. Also used as the router's fallback handler.
func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}

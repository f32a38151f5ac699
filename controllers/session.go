package controllers

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"microblog/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionName = "microblog_session"

const (
	sessionUserKey    = "user_id"
	sessionPendingKey = "pending_user_id" // set between password check and 2FA code check
	sessionNextKey    = "next"
	sessionPhoneKey   = "pending_phone"
)

const ctxUserKey = "auth_user"

func getSession(c *gin.Context) *sessions.Session {
	app := AppInstance(c)
	// Get never fails for cookie stores: a bad or missing cookie
	// yields a fresh session, which here means anonymous.
	sess, _ := app.Sessions.Get(c.Request, sessionName)
	return sess
}

func saveSession(c *gin.Context, sess *sessions.Session) {
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("session save failed: %v", err)
	}
}

// loginUser establishes an authenticated session for user and clears any
// pending 2FA state.
func loginUser(c *gin.Context, user models.User) {
	sess := getSession(c)
	sess.Values[sessionUserKey] = user.ID
	delete(sess.Values, sessionPendingKey)
	delete(sess.Values, sessionNextKey)
	saveSession(c, sess)
	c.Set(ctxUserKey, user)
}

// logoutUser destroys the session unconditionally.
func logoutUser(c *gin.Context) {
	sess := getSession(c)
	sess.Options.MaxAge = -1
	saveSession(c, sess)
}

func flash(c *gin.Context, msg string) {
	sess := getSession(c)
	sess.AddFlash(msg)
	saveSession(c, sess)
}

// LoadSessionUser resolves the session cookie to a user, stores it in the
// request context and best-effort updates the last-seen timestamp. A failed
// timestamp update must never abort the request.
func LoadSessionUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		app := AppInstance(c)
		sess := getSession(c)
		id, ok := sess.Values[sessionUserKey].(int64)
		if !ok || id == 0 {
			c.Next()
			return
		}

		var user models.User
		if err := app.DB.First(&user, id).Error; err != nil {
			// stale cookie, treat as anonymous
			c.Next()
			return
		}

		now := time.Now().UTC()
		if err := app.DB.Model(&user).Update("last_seen", &now).Error; err != nil {
			log.Printf("last_seen update failed for user %d: %v", user.ID, err)
		}
		user.LastSeen = &now

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// GetUserLogged returns the user loaded by LoadSessionUser.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// AuthRequired guards routes that need an authenticated session, redirecting
// anonymous visitors to the login page with the requested path preserved.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserLogged(c); !ok {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// safeNextPath returns next when it is a same-origin relative path, and the
// home path otherwise. Anything carrying a scheme or network location is
// rejected to prevent open redirects.
func safeNextPath(next string) string {
	if next == "" {
		return "/home"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/home"
	}
	// browsers normalize "/\" to "//", making it protocol-relative
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/home"
	}
	return next
}

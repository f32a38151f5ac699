package controllers

import (
	"net/http"

	"microblog/models"

	"github.com/gin-gonic/gin"
)

// LoginPage renders the login form. Already-authenticated users go home.
func LoginPage(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"Title": "Login",
		"Next":  c.Query("next"),
	})
}

// Login checks the submitted credentials. Unknown user and wrong password
// produce the same generic message.
func Login(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/login")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "login.html", gin.H{
			"Title":  "Login",
			"Form":   form,
			"Errors": errs,
			"Next":   c.Query("next"),
		})
		return
	}

	app := AppInstance(c)

	var user models.User
	err := app.DB.Where("username = ?", form.Username).First(&user).Error
	if err != nil || !checkUserPassword(user, form.Password) {
		flash(c, "Invalid username or password")
		redirect(c, "/login")
		return
	}

	next := safeNextPath(c.Query("next"))

	if user.TwoFactorEnabled() {
		if err := app.Verifier.RequestVerificationToken(c.Request.Context(), user.Phone); err != nil {
			flash(c, "We could not send a verification code. Try again later.")
			redirect(c, "/login")
			return
		}
		sess := getSession(c)
		sess.Values[sessionPendingKey] = user.ID
		sess.Values[sessionNextKey] = next
		saveSession(c, sess)
		redirect(c, "/verify_2fa")
		return
	}

	loginUser(c, user)
	redirect(c, next)
}

// Logout destroys the session unconditionally.
func Logout(c *gin.Context) {
	logoutUser(c)
	redirect(c, "/login")
}

// Verify2FAPage renders the login-time code form.
func Verify2FAPage(c *gin.Context) {
	if _, ok := pendingUser(c); !ok {
		redirect(c, "/login")
		return
	}
	render(c, http.StatusOK, "verify_2fa.html", gin.H{"Title": "Two-Factor Verification"})
}

// Verify2FA completes a pending login once the provider approves the code.
func Verify2FA(c *gin.Context) {
	user, ok := pendingUser(c)
	if !ok {
		redirect(c, "/login")
		return
	}

	var form CodeForm
	if err := c.ShouldBind(&form); err != nil || form.Code == "" {
		flash(c, "Invalid verification code.")
		redirect(c, "/verify_2fa")
		return
	}

	app := AppInstance(c)
	if !app.Verifier.CheckVerificationToken(c.Request.Context(), user.Phone, form.Code) {
		flash(c, "Invalid verification code.")
		redirect(c, "/verify_2fa")
		return
	}

	sess := getSession(c)
	next, _ := sess.Values[sessionNextKey].(string)
	loginUser(c, user)
	redirect(c, safeNextPath(next))
}

func pendingUser(c *gin.Context) (models.User, bool) {
	sess := getSession(c)
	id, ok := sess.Values[sessionPendingKey].(int64)
	if !ok || id == 0 {
		return models.User{}, false
	}
	app := AppInstance(c)
	var user models.User
	if err := app.DB.First(&user, id).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}

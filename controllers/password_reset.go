package controllers

import (
	"log"
	"net/http"
	"time"

	"microblog/auth"
	"microblog/mail"
	"microblog/models"

	"github.com/gin-gonic/gin"
)

// ResetPasswordRequestPage renders the "forgot password" form.
func ResetPasswordRequestPage(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}
	render(c, http.StatusOK, "reset_password_request.html", gin.H{"Title": "Reset Password"})
}

// ResetPasswordRequest dispatches a reset email when the address matches a
// user. The visible response is identical either way, so the endpoint never
// reveals whether an account exists.
func ResetPasswordRequest(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}

	var form ResetPasswordRequestForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/reset_password_request")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "reset_password_request.html", gin.H{
			"Title":  "Reset Password",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	app := AppInstance(c)

	var user models.User
	if err := app.DB.Where("email = ?", form.Email).First(&user).Error; err == nil {
		ttl := time.Duration(app.Config.Security.ResetTokenTTLMin) * time.Minute
		token, err := auth.GenerateResetToken(user.ID, []byte(app.Config.Security.JwtSecret), ttl)
		if err == nil {
			err = mail.SendPasswordResetEmail(app.Mailer, &user, token, app.Config.BaseURL)
		}
		if err != nil {
			// delivery failure is logged, never detailed to the visitor
			log.Printf("password reset email failed for user %d: %v", user.ID, err)
		}
	}

	flash(c, "Check your email for the instructions to reset your password")
	redirect(c, "/login")
}

// ResetPasswordPage verifies the token from the URL and renders the
// new-password form. Bad tokens redirect home with no feedback.
func ResetPasswordPage(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}
	if _, ok := resetTokenUser(c); !ok {
		redirect(c, "/home")
		return
	}
	render(c, http.StatusOK, "reset_password.html", gin.H{"Title": "Reset Password"})
}

// ResetPassword updates the password hash for the user the token resolves to.
func ResetPassword(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}
	user, ok := resetTokenUser(c)
	if !ok {
		redirect(c, "/home")
		return
	}

	var form ResetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/home")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "reset_password.html", gin.H{
			"Title":  "Reset Password",
			"Errors": errs,
		})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		redirect(c, "/home")
		return
	}

	app := AppInstance(c)
	if err := app.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		log.Printf("password update failed for user %d: %v", user.ID, err)
		redirect(c, "/home")
		return
	}

	flash(c, "Your password has been reset.")
	redirect(c, "/login")
}

// resetTokenUser resolves the :token path segment to a user. Signature or
// expiry failures yield no user, not an error.
func resetTokenUser(c *gin.Context) (models.User, bool) {
	app := AppInstance(c)
	userID, ok := auth.VerifyResetToken(c.Param("token"), []byte(app.Config.Security.JwtSecret))
	if !ok {
		return models.User{}, false
	}
	var user models.User
	if err := app.DB.First(&user, userID).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}

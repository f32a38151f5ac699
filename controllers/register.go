package controllers

import (
	"net/http"

	"microblog/auth"
	"microblog/models"

	"github.com/gin-gonic/gin"
)

// RegisterPage renders the registration form. Already-authenticated users
// go home.
func RegisterPage(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

// Register creates a new user. Duplicate username or email re-renders the
// form with field-level errors; the store keeps a single row per identity.
func Register(c *gin.Context) {
	if _, ok := GetUserLogged(c); ok {
		redirect(c, "/home")
		return
	}

	var form RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"Title": "Register"})
		return
	}

	app := AppInstance(c)
	if errs := form.Validate(app.DB); len(errs) > 0 {
		render(c, http.StatusOK, "register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": FieldErrors{"password": "Could not process password."},
		})
		return
	}

	user := models.User{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
	}
	if err := app.DB.Create(&user).Error; err != nil {
		// unique index race between validation and insert
		render(c, http.StatusOK, "register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": FieldErrors{"username": "Please use a different username or email address."},
		})
		return
	}

	flash(c, "You have successfully registered. Login to proceed.")
	redirect(c, "/login")
}

func checkUserPassword(user models.User, password string) bool {
	return auth.CheckPassword(user.PasswordHash, password)
}

package controllers

import (
	"net/http"

	"microblog/models"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page for authenticated users.
func Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", gin.H{"Title": "Home"})
}

// UserProfile renders a user's profile page with example posts.
// Unknown usernames get a 404.
func UserProfile(c *gin.Context) {
	app := AppInstance(c)

	var user models.User
	if err := app.DB.Where("username = ?", c.Param("username")).First(&user).Error; err != nil {
		NotFound(c)
		return
	}

	posts := []gin.H{
		{"Author": user, "Body": "Test post #1"},
		{"Author": user, "Body": "Test post #2"},
	}
	render(c, http.StatusOK, "user.html", gin.H{
		"Title": user.Username,
		"User":  user,
		"Posts": posts,
	})
}

// EditProfilePage pre-fills the form with the logged user's current values.
func EditProfilePage(c *gin.Context) {
	user, _ := GetUserLogged(c)
	render(c, http.StatusOK, "edit_profile.html", gin.H{
		"Title": "Edit Profile",
		"Form":  EditProfileForm{Username: user.Username, AboutMe: user.AboutMe},
	})
}

// EditProfile persists profile changes. The new username must not belong to
// anyone else; keeping the current one is allowed.
func EditProfile(c *gin.Context) {
	user, _ := GetUserLogged(c)
	app := AppInstance(c)

	var form EditProfileForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "edit_profile.html", gin.H{"Title": "Edit Profile"})
		return
	}
	if errs := form.Validate(app.DB, user); len(errs) > 0 {
		render(c, http.StatusOK, "edit_profile.html", gin.H{
			"Title":  "Edit Profile",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	updates := map[string]interface{}{
		"username": form.Username,
		"about_me": form.AboutMe,
	}
	if err := app.DB.Model(&user).Updates(updates).Error; err != nil {
		render(c, http.StatusOK, "edit_profile.html", gin.H{
			"Title":  "Edit Profile",
			"Form":   form,
			"Errors": FieldErrors{"username": "Could not save changes."},
		})
		return
	}

	flash(c, "Your changes have been saved.")
	redirect(c, "/user/"+form.Username)
}

package controllers

import (
	"net/http"

	"microblog/tools"

	"github.com/gin-gonic/gin"
)

// Enable2FAPage renders the phone number form.
func Enable2FAPage(c *gin.Context) {
	render(c, http.StatusOK, "enable_2fa.html", gin.H{"Title": "Enable Two-Factor"})
}

// Enable2FA asks the provider to deliver a code to the submitted phone and
// parks the number in the session until it is confirmed.
func Enable2FA(c *gin.Context) {
	var form PhoneForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "enable_2fa.html", gin.H{"Title": "Enable Two-Factor"})
		return
	}

	phone, err := tools.NormalizePhone(form.Phone)
	if err != nil {
		render(c, http.StatusOK, "enable_2fa.html", gin.H{
			"Title":  "Enable Two-Factor",
			"Form":   form,
			"Errors": FieldErrors{"phone": "Enter a valid phone number."},
		})
		return
	}

	app := AppInstance(c)
	if err := app.Verifier.RequestVerificationToken(c.Request.Context(), phone); err != nil {
		render(c, http.StatusOK, "enable_2fa.html", gin.H{
			"Title":  "Enable Two-Factor",
			"Form":   form,
			"Errors": FieldErrors{"phone": "We could not send a verification code. Try again later."},
		})
		return
	}

	sess := getSession(c)
	sess.Values[sessionPhoneKey] = phone
	saveSession(c, sess)
	redirect(c, "/confirm_2fa")
}

// Confirm2FAPage renders the code form for a phone awaiting confirmation.
func Confirm2FAPage(c *gin.Context) {
	if pendingPhone(c) == "" {
		redirect(c, "/enable_2fa")
		return
	}
	render(c, http.StatusOK, "confirm_2fa.html", gin.H{"Title": "Confirm Two-Factor"})
}

// Confirm2FA persists the phone once the provider approves the code,
// turning two-factor on for the logged user.
func Confirm2FA(c *gin.Context) {
	phone := pendingPhone(c)
	if phone == "" {
		redirect(c, "/enable_2fa")
		return
	}

	var form CodeForm
	if err := c.ShouldBind(&form); err != nil || form.Code == "" {
		render(c, http.StatusOK, "confirm_2fa.html", gin.H{
			"Title":  "Confirm Two-Factor",
			"Errors": FieldErrors{"code": "This field is required."},
		})
		return
	}

	app := AppInstance(c)
	if !app.Verifier.CheckVerificationToken(c.Request.Context(), phone, form.Code) {
		render(c, http.StatusOK, "confirm_2fa.html", gin.H{
			"Title":  "Confirm Two-Factor",
			"Errors": FieldErrors{"code": "Invalid verification code."},
		})
		return
	}

	user, _ := GetUserLogged(c)
	if err := app.DB.Model(&user).Update("phone", phone).Error; err != nil {
		render(c, http.StatusOK, "confirm_2fa.html", gin.H{
			"Title":  "Confirm Two-Factor",
			"Errors": FieldErrors{"code": "Could not save changes."},
		})
		return
	}

	sess := getSession(c)
	delete(sess.Values, sessionPhoneKey)
	saveSession(c, sess)

	flash(c, "Two-factor authentication is now enabled.")
	redirect(c, "/home")
}

// Disable2FA clears the verified phone, turning two-factor off.
func Disable2FA(c *gin.Context) {
	user, _ := GetUserLogged(c)
	app := AppInstance(c)
	if err := app.DB.Model(&user).Update("phone", "").Error; err == nil {
		flash(c, "Two-factor authentication is now disabled.")
	}
	redirect(c, "/home")
}

func pendingPhone(c *gin.Context) string {
	sess := getSession(c)
	phone, _ := sess.Values[sessionPhoneKey].(string)
	return phone
}

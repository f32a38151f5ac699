package router

import (
	"log"

	"microblog/controllers"
	"microblog/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes plus an
// authenticated group guarded by AuthRequired.
func Initialize(r *gin.Engine, app *controllers.App) {
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(controllers.SetAppToContext(app))
	r.Use(controllers.LoadSessionUser())

	// Public (no session required)
	r.GET("/login", Logger(), controllers.LoginPage)
	r.POST("/login", Logger(), controllers.Login)
	r.GET("/logout", Logger(), controllers.Logout)
	r.GET("/register", Logger(), controllers.RegisterPage)
	r.POST("/register", Logger(), controllers.Register)
	r.GET("/reset_password_request", Logger(), controllers.ResetPasswordRequestPage)
	r.POST("/reset_password_request", Logger(), controllers.ResetPasswordRequest)
	r.GET("/reset_password/:token", Logger(), controllers.ResetPasswordPage)
	r.POST("/reset_password/:token", Logger(), controllers.ResetPassword)
	r.GET("/verify_2fa", Logger(), controllers.Verify2FAPage)
	r.POST("/verify_2fa", Logger(), controllers.Verify2FA)

	// Authenticated routes (session required)
	authd := r.Group("")
	authd.Use(controllers.AuthRequired())
	authd.GET("/", Logger(), controllers.Home)
	authd.GET("/home", Logger(), controllers.Home)
	authd.GET("/user/:username", Logger(), controllers.UserProfile)
	authd.GET("/edit_profile", Logger(), controllers.EditProfilePage)
	authd.POST("/edit_profile", Logger(), controllers.EditProfile)
	authd.GET("/enable_2fa", Logger(), controllers.Enable2FAPage)
	authd.POST("/enable_2fa", Logger(), controllers.Enable2FA)
	authd.GET("/confirm_2fa", Logger(), controllers.Confirm2FAPage)
	authd.POST("/confirm_2fa", Logger(), controllers.Confirm2FA)
	authd.POST("/disable_2fa", Logger(), controllers.Disable2FA)

	r.NoRoute(Logger(), controllers.NotFound)

	log.Printf("Routes initialized")
}

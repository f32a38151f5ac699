package controllers

import (
	"microblog/models"
	"microblog/tools"

	"github.com/jinzhu/gorm"
)

// FieldErrors maps a form field name to its validation message. An empty
// map means the form passed.
type FieldErrors map[string]string

type RegistrationForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

// Validate checks presence, password confirmation and uniqueness of
// username and email against the store.
func (f *RegistrationForm) Validate(db *gorm.DB) FieldErrors {
	errs := FieldErrors{}

	if f.FirstName == "" {
		errs["first_name"] = "This field is required."
	}
	if f.LastName == "" {
		errs["last_name"] = "This field is required."
	}
	if f.Username == "" {
		errs["username"] = "This field is required."
	}
	if f.Email == "" {
		errs["email"] = "This field is required."
	} else if !tools.ValidateEmail(f.Email) {
		errs["email"] = "Invalid email address."
	}
	if f.Password == "" {
		errs["password"] = "This field is required."
	}
	if f.Password2 != f.Password {
		errs["password2"] = "Passwords must match."
	}

	if errs["username"] == "" {
		var existing models.User
		if err := db.Where("username = ?", f.Username).First(&existing).Error; err == nil {
			errs["username"] = "Please use a different username."
		}
	}
	if errs["email"] == "" {
		var existing models.User
		if err := db.Where("email = ?", f.Email).First(&existing).Error; err == nil {
			errs["email"] = "Please use a different email address."
		}
	}

	return errs
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if f.Username == "" {
		errs["username"] = "This field is required."
	}
	if f.Password == "" {
		errs["password"] = "This field is required."
	}
	return errs
}

type EditProfileForm struct {
	Username string `form:"username"`
	AboutMe  string `form:"about_me"`
}

// Validate requires a username and checks it is not taken by anyone other
// than the user being edited.
func (f *EditProfileForm) Validate(db *gorm.DB, current models.User) FieldErrors {
	errs := FieldErrors{}
	if f.Username == "" {
		errs["username"] = "This field is required."
		return errs
	}
	if f.Username == current.Username {
		return errs
	}
	var existing models.User
	if err := db.Where("username = ?", f.Username).First(&existing).Error; err == nil {
		errs["username"] = "Please use a different username."
	}
	return errs
}

type ResetPasswordRequestForm struct {
	Email string `form:"email"`
}

func (f *ResetPasswordRequestForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if f.Email == "" {
		errs["email"] = "This field is required."
	} else if !tools.ValidateEmail(f.Email) {
		errs["email"] = "Invalid email address."
	}
	return errs
}

type ResetPasswordForm struct {
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

func (f *ResetPasswordForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if f.Password == "" {
		errs["password"] = "This field is required."
	}
	if f.Password2 != f.Password {
		errs["password2"] = "Passwords must match."
	}
	return errs
}

type PhoneForm struct {
	Phone string `form:"phone"`
}

type CodeForm struct {
	Code string `form:"code"`
}

package models

import "github.com/joblyhq/jobly/internal/database/sqlutil"

// User is a row of the users table. The password hash never leaves the
// server.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
	Password  string `json:"-" db:"password"`
}

// UserWithJobs is a user plus the ids of the jobs they applied to.
type UserWithJobs struct {
	User
	Jobs []int `json:"jobs"`
}

// CreateUserRequest is the body of POST /users and, without isAdmin, of
// POST /auth/register.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" validate:"required,min=1,max=30"`
	Email     string `json:"email" validate:"required,min=6,max=60,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest is the body of PATCH /users/:username.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitnil,min=1,max=30"`
	LastName  *string `json:"lastName" validate:"omitnil,min=1,max=30"`
	Password  *string `json:"password" validate:"omitnil,min=5,max=20"`
	Email     *string `json:"email" validate:"omitnil,min=6,max=60,email"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// Fields returns the present fields in declaration order. The password is
// taken as given; callers hash it first.
func (r UpdateUserRequest) Fields() sqlutil.FieldSet {
	var fs sqlutil.FieldSet
	if r.FirstName != nil {
		fs.Set("firstName", *r.FirstName)
	}
	if r.LastName != nil {
		fs.Set("lastName", *r.LastName)
	}
	if r.Password != nil {
		fs.Set("password", *r.Password)
	}
	if r.Email != nil {
		fs.Set("email", *r.Email)
	}
	if r.IsAdmin != nil {
		fs.Set("isAdmin", *r.IsAdmin)
	}
	return fs
}

package models

import "time"

// Role is the account type of a user. It decides which mutations on
// companies and jobs the user may perform.
type Role string

const (
	// RoleUser is a regular job seeker.
	RoleUser Role = "User"
	// RoleCompanyHR is an HR account that may own companies and post jobs.
	RoleCompanyHR Role = "Company_HR"
)

// UserStatus tracks whether the user currently holds an active session.
type UserStatus string

const (
	StatusOnline  UserStatus = "online"
	StatusOffline UserStatus = "offline"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-generated identifier of the user (UUIDv7).
	ID string `json:"_id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Username is unique across all users and may be used to sign in.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// RecoveryEmail is a secondary address. Several accounts may share it.
	RecoveryEmail string `json:"recoveryEmail"`

	// DOB is the date of birth in YYYY-MM-DD form.
	DOB string `json:"DOB"`

	// MobileNumber is unique across all users and may be used to sign in.
	MobileNumber string `json:"mobileNumber"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SignUpRequest is the payload of POST /users/signUp.
type SignUpRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Username      string `json:"username" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	RecoveryEmail string `json:"recoveryEmail" validate:"required,email"`
	DOB           string `json:"DOB" validate:"required,datetime=2006-01-02"`
	MobileNumber  string `json:"mobileNumber" validate:"required,numeric"`
	Role          Role   `json:"role" validate:"required,oneof=User Company_HR"`
}

// SignInRequest is the payload of POST /users/signIn. Username may hold
// either the username or the mobile number; MobileNumber is accepted as an
// explicit alternative.
type SignInRequest struct {
	Username     string `json:"username" validate:"required_without=MobileNumber"`
	MobileNumber string `json:"mobileNumber" validate:"required_without=Username"`
	Password     string `json:"password" validate:"required"`
}

// Login returns the identifier used to look the account up.
func (r SignInRequest) Login() string {
	if r.Username != "" {
		return r.Username
	}
	return r.MobileNumber
}

// UserUpdate carries the optional fields of PUT /users/updateAccount.
// Nil fields are left untouched.
type UserUpdate struct {
	FirstName     *string     `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName      *string     `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Username      *string     `json:"username,omitempty" validate:"omitempty,min=1"`
	Email         *string     `json:"email,omitempty" validate:"omitempty,email"`
	RecoveryEmail *string     `json:"recoveryEmail,omitempty" validate:"omitempty,email"`
	DOB           *string     `json:"DOB,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MobileNumber  *string     `json:"mobileNumber,omitempty" validate:"omitempty,numeric"`
	Role          *Role       `json:"role,omitempty" validate:"omitempty,oneof=User Company_HR"`
	Status        *UserStatus `json:"status,omitempty" validate:"omitempty,oneof=online offline"`
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Username == nil &&
		u.Email == nil && u.RecoveryEmail == nil && u.DOB == nil &&
		u.MobileNumber == nil && u.Role == nil && u.Status == nil
}

// DeleteAccountRequest is the payload of DELETE /users/deleteAccount.
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the payload of PATCH /users/updatePassword.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// ForgetPasswordRequest is the payload of PATCH /users/forgetPassword.
type ForgetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTP      int    `json:"OTP" validate:"required,min=100000,max=999999"`
	Password string `json:"password" validate:"required"`
}

// RecoveryEmailQuery holds the query of GET /users/getAccountsByRecoveryEmail.
type RecoveryEmailQuery struct {
	RecoveryEmail string `json:"recoveryEmail" validate:"required,email"`
}

// UserIDParams holds the path parameters of user endpoints.
type UserIDParams struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

package model

type User struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	IsActive       bool   `json:"is_active"`
	IsSuperuser    bool   `json:"is_superuser"`
}

// SignupReq represents the user signup payload
// swagger:model SignupReq
type SignupReq struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=30"`
}

// LoginReq is the /login form payload. The form field is named
// "username" but carries the user's email. The value is deliberately
// not checked for email shape: a malformed address fails the lookup
// and gets the same not-found answer as any other bad credential.
type LoginReq struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// UserPublic is the projection returned to API callers.
type UserPublic struct {
	ID int64 `json:"id"`
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

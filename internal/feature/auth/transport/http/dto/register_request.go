// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import "account_backend/internal/feature/auth/usecase"

// RegisterReq represents the request body for the /register endpoint.
type RegisterReq struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Validate performs the syntactic field checks and returns the first
// violation as a field error. Business rules (email uniqueness, credential
// match) are the usecase's concern, not validated here.
func (r RegisterReq) Validate() []usecase.FieldError {
	if len(r.UserName) < 3 || len(r.UserName) > 20 {
		return []usecase.FieldError{{Field: "userName", Message: "User name must be between 3 and 20 characters"}}
	}
	if !validEmail(r.Email) {
		return []usecase.FieldError{{Field: "email", Message: "Invalid email"}}
	}
	if !validPassword(r.Password) {
		return []usecase.FieldError{{Field: "password", Message: passwordRuleMessage}}
	}
	return nil
}

// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "account_backend/internal/feature/auth/usecase"

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Validate は構文レベルのフィールドチェックを行い、最初の違反をフィールドエラーとして返します。
func (r LoginReq) Validate() []usecase.FieldError {
	if !validEmail(r.Email) {
		return []usecase.FieldError{{Field: "email", Message: "Invalid email"}}
	}
	if !validPassword(r.Password) {
		return []usecase.FieldError{{Field: "password", Message: passwordRuleMessage}}
	}
	return nil
}

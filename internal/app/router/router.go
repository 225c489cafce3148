package router

import (
	"github.com/gin-gonic/gin"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	"account_backend/internal/platform/http/handler"
	jwtmw "account_backend/internal/platform/jwt"
)

// NewRouter はアプリケーションの全ルートを登録したgin.Engineを生成します。
// authLimiterはnil可（Redisが無い環境ではレート制限なしで動作）。
func NewRouter(authHandler *authhandler.AuthHandler, verifier jwtmw.Verifier, authLimiter gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// リクエストごとに一度だけBearerトークンを検証し、
	// 検証済みユーザーをコンテキストに載せる（未認証でもエラーにしない）
	r.Use(jwtmw.Identify(verifier))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 資格情報を受け取るエンドポイントにはレート制限を適用
	creds := r.Group("/")
	if authLimiter != nil {
		creds.Use(authLimiter)
	}
	{
		// 新規ユーザー登録
		creds.POST("/register", authHandler.Register)
		// ログイン（トークンペア発行）
		creds.POST("/login", authHandler.Login)
	}

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.RequireUser())
	{
		auth.GET("/me", authHandler.Me)
	}

	return r
}

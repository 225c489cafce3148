// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/auth/usecase"
	jwtmw "account_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録します。
	Register(ctx context.Context, userName, email, password string) (*entity.User, []usecase.FieldError, error)
	// Login はユーザーを認証し、成功時にトークンペアを返します。
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, []usecase.FieldError, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - 構文バリデーション違反時は400とフィールドエラーを返却
// - メール重複時は409とフィールドエラーを返却
// - 予期しない障害時は500（内部情報は返さない）
// - 成功時は201と登録済みユーザー（パスワードハッシュは含まない）を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, dto.UserResponse{Errors: fieldErrs})
		return
	}

	user, fieldErrs, err := h.auth.Register(c.Request.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		// 内部エラーの詳細はログのみに残し、クライアントには返さない
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if len(fieldErrs) > 0 {
		slog.Warn("register rejected", "field", fieldErrs[0].Field, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, dto.UserResponse{Errors: fieldErrs})
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserResponse{User: dto.UserResFromEntity(user)})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - 構文バリデーション違反時は400とフィールドエラーを返却
// - 認証失敗時は401とフィールドエラーを返却
// - 認証成功時はユーザーとアクセス/リフレッシュトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, dto.UserResponse{Errors: fieldErrs})
		return
	}

	result, fieldErrs, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if len(fieldErrs) > 0 {
		slog.Warn("login rejected", "field", fieldErrs[0].Field, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.UserResponse{Errors: fieldErrs})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.UserResponse{
		User: &dto.UserRes{
			ID:       result.User.ID,
			UserName: result.User.UserName,
			Email:    result.User.Email,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// Me は認証済みユーザー自身の情報を返します。
// jwtmw.Identifyがコンテキストに設定したユーザーをそのまま返却します。
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := jwtmw.UserFrom(c)
	if !ok {
		// RequireUserを通過していれば到達しない
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

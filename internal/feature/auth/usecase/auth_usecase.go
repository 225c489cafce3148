// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"account_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrUserAlreadyExistsを返します。
	// 一意性はストレージ層のユニーク制約で保証されます（check-then-actの競合を防ぐため）。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証のインターフェースを定義します。
type PasswordHasher interface {
	// Hash は平文パスワードからエンコード済みハッシュを生成します。
	Hash(plain string) (string, error)
	// Verify は平文がハッシュと一致するかを返します。
	Verify(encoded, plain string) bool
}

// TokenIssuer は署名済みトークン発行のインターフェースを定義します。
type TokenIssuer interface {
	// Issue は指定されたユーザーの署名済みトークンを生成します。
	Issue(id, userName, email string) (string, error)
}

// AuthResult はログイン成功時の結果（検証済みユーザーとトークンペア）です。
type AuthResult struct {
	User         *entity.AuthorizedUser
	AccessToken  string
	RefreshToken string
}

// authUsecase は認証ビジネスロジックを実装します。
// コラボレーター（リポジトリ・ハッシャー・トークン発行者）はすべて
// コンストラクタで注入され、グローバル状態を持ちません。
type authUsecase struct {
	users   UserRepository
	hasher  PasswordHasher
	access  TokenIssuer
	refresh TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, access, refresh TokenIssuer) *authUsecase {
	return &authUsecase{
		users:   users,
		hasher:  hasher,
		access:  access,
		refresh: refresh,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスが既に使用されている場合はFieldErrorを返します。
// 平文パスワードは永続化もログ出力もされず、ハッシュのみがストレージ境界を越えます。
func (u *authUsecase) Register(ctx context.Context, userName, email, password string) (*entity.User, []FieldError, error) {
	// ハッシュ化の失敗は設定不備を意味するため内部エラーとして伝播
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		UserName:     userName,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// ユニーク制約違反はフィールドエラーに変換し、生のストレージエラーは漏らさない
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, []FieldError{{Field: "email", Message: "User already exists"}}, nil
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil, nil
}

// Login はユーザーを認証し、成功時にアクセストークンとリフレッシュトークンを発行します。
// 「ユーザー未登録」と「パスワード不一致」は区別可能なフィールドエラーとして返します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, []FieldError, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, []FieldError{{Field: "email", Message: "User not found"}}, nil
		}
		// ストレージ障害は内部エラーとして伝播
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	// パスワード検証の失敗は例外ではなく通常のフィールドエラー
	if !u.hasher.Verify(user.PasswordHash, password) {
		return nil, []FieldError{{Field: "password", Message: "Incorrect password"}}, nil
	}

	// アクセス用とリフレッシュ用は独立した鍵・TTLで発行する
	accessToken, err := u.access.Issue(user.ID, user.UserName, user.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := u.refresh.Issue(user.ID, user.UserName, user.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &AuthResult{
		User: &entity.AuthorizedUser{
			ID:       user.ID,
			UserName: user.UserName,
			Email:    user.Email,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil, nil
}

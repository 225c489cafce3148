package main

import (
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/router"
	authadapters "account_backend/internal/feature/auth/adapters"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/config"
	platformdb "account_backend/internal/platform/db"
	"account_backend/internal/platform/hash"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/platform/ratelimit"
	platformredis "account_backend/internal/platform/redis"
)

func main() {
	// 設定（署名鍵が未設定なら起動失敗させる）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	db := platformdb.OpenDB()

	// Redis（無い環境ではレート制限なしで起動する）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without login rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)

	// Platform services
	hasher := hash.NewArgon2Hasher()
	accessIssuer := jwtmw.NewIssuer(cfg.JWTKey, cfg.AccessTTL)
	refreshIssuer := jwtmw.NewIssuer(cfg.JWTRefreshKey, cfg.RefreshTTL)
	verifier := jwtmw.NewVerifier(cfg.JWTKey)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, accessIssuer, refreshIssuer)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// 資格情報エンドポイント用レートリミッタ
	var authLimiter gin.HandlerFunc
	if rdb != nil {
		authLimiter = ratelimit.NewLimiter(rdb, "authrl", 10, time.Minute).Middleware()
	}

	// ルータ生成
	r := router.NewRouter(authH, verifier, authLimiter)

	slog.Info("starting server", "env", cfg.Env, "port", cfg.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

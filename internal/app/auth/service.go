package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/internal/apperr"
	"backend/internal/app/user"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Register(ctx context.Context, req RegistrationRequest) (*Credentials, error)
	Login(ctx context.Context, req LoginRequest) (*Credentials, error)
	ResolveToken(ctx context.Context, key string) (*Actor, error)
}

// TokenCache is the slice of the redis provider the token resolver needs.
type TokenCache interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	SetEX(ctx context.Context, key string, value interface{}, ttl time.Duration) *goredis.StatusCmd
}

type service struct {
	repo     Repository
	userRepo user.Repository
	cache    TokenCache
	logger   *zap.SugaredLogger
	cacheTTL time.Duration
}

func NewService(repo Repository, userRepo user.Repository, cache TokenCache, logger *zap.Logger, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
		logger:   logger.Sugar(),
		cacheTTL: cacheTTL,
	}
}

func (s *service) Register(ctx context.Context, req RegistrationRequest) (*Credentials, error) {
	if req.Password != req.RepeatedPassword {
		return nil, apperr.FieldValidation("password", "Passwords don't match")
	}

	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperr.FieldValidation("email", "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Email:        req.Email,
		Fullname:     req.Fullname,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.getOrCreateToken(u.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("User registered", "user_id", u.ID, "email", u.Email)

	return &Credentials{
		Token:    token.Key,
		Fullname: u.Fullname,
		Email:    u.Email,
		UserID:   u.ID,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Credentials, error) {
	u, err := s.userRepo.GetByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Validation("Invalid credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Validation("Invalid credentials")
	}
	if !u.Active {
		return nil, apperr.Validation("Invalid credentials")
	}

	token, err := s.getOrCreateToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		Token:    token.Key,
		Fullname: u.Fullname,
		Email:    u.Email,
		UserID:   u.ID,
	}, nil
}

// ResolveToken turns a bearer token into the acting identity. Resolutions are
// cached in redis for the configured TTL; a cache miss or redis outage falls
// back to the store.
func (s *service) ResolveToken(ctx context.Context, key string) (*Actor, error) {
	cacheKey := fmt.Sprintf("auth:token:%s", key)

	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var actor Actor
		if json.Unmarshal([]byte(cached), &actor) == nil {
			return &actor, nil
		}
	}

	token, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, fmt.Errorf("token not found: %w", err)
	}

	u, err := s.userRepo.GetByID(token.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if !u.Active {
		return nil, fmt.Errorf("user %d is inactive", u.ID)
	}

	actor := &Actor{ID: u.ID, Email: u.Email, Fullname: u.Fullname}

	if data, err := json.Marshal(actor); err == nil {
		s.cache.SetEX(ctx, cacheKey, data, s.cacheTTL)
	}

	return actor, nil
}

func (s *service) getOrCreateToken(userID uint64) (*Token, error) {
	token, err := s.repo.GetByUserID(userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	key, err := generateTokenKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	token = &Token{Key: key, UserID: userID}
	if err := s.repo.Create(token); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return token, nil
}

func generateTokenKey() (string, error) {
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

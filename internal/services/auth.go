package services

import (
	"context"
	"strings"
	"time"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/utils"
)

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

type AuthService struct {
	store  repository.Store
	secret string
	ttl    time.Duration
}

func NewAuthService(store repository.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{store: store, secret: secret, ttl: ttl}
}

func (s *AuthService) Login(ctx context.Context, in models.LoginInput) (*LoginResult, error) {
	user, err := s.store.FindUserByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, notFoundOr(err, apperror.Unauthorized("Username atau password salah"), "Gagal login")
	}
	if !utils.CheckPassword(in.Password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Username atau password salah")
	}

	token, err := utils.GenerateToken(s.secret, s.ttl, user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal("Gagal membuat token", err)
	}
	return &LoginResult{Token: token, ExpiresAt: time.Now().Add(s.ttl), User: user}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, apperror.NotFound("User tidak ditemukan"), "Gagal mengambil user")
	}
	return user, nil
}

// CreateUser dipakai command create-user
func (s *AuthService) CreateUser(ctx context.Context, username, fullName, password, role string, businessAreaID *uint64) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.Validation("Username wajib diisi")
	}
	if role == "" {
		role = models.RoleStaff
	}
	if role != models.RoleAdmin && role != models.RoleStaff {
		return nil, apperror.Validation("Role harus ADMIN atau STAFF")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if fullName == "" {
		fullName = username
	}

	user := &models.User{
		Username:       username,
		FullName:       fullName,
		PasswordHash:   hash,
		Role:           role,
		BusinessAreaID: businessAreaID,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if _, dup := repository.DuplicateKey(err); dup {
			return nil, apperror.Conflict("Username sudah digunakan")
		}
		return nil, storageError("Gagal membuat user", err)
	}
	return user, nil
}

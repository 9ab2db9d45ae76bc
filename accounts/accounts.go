// Package accounts handles sign-up, login, password changes and the
// forgot-password reset code flow.
package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"renthub/apperr"
	"renthub/logger"
	"renthub/models"
	"renthub/policy"
	"renthub/store"
	"renthub/tools"

	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher hashes with bcrypt at Cost (bcrypt.DefaultCost when zero).
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(b), err
}

func (h BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Notifier delivers a freshly issued reset code to the user.
type Notifier interface {
	SendResetCode(ctx context.Context, user models.User, code string) error
}

// LogNotifier writes the code to the log instead of sending it.
type LogNotifier struct{}

func (LogNotifier) SendResetCode(_ context.Context, user models.User, code string) error {
	logger.Info("password reset code issued", "user_id", user.ID, "email", user.Email, "code", code)
	return nil
}

type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type Settings struct {
	CodeLength int
	CodeTTL    time.Duration
}

type Service struct {
	db       store.Database
	hasher   Hasher
	notifier Notifier
	limiter  Limiter
	settings Settings
	now      func() time.Time
}

func NewService(db store.Database, hasher Hasher, notifier Notifier, limiter Limiter, settings Settings) *Service {
	if settings.CodeLength <= 0 {
		settings.CodeLength = 7
	}
	if settings.CodeTTL <= 0 {
		settings.CodeTTL = 10 * time.Minute
	}
	return &Service{
		db:       db,
		hasher:   hasher,
		notifier: notifier,
		limiter:  limiter,
		settings: settings,
		now:      time.Now,
	}
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// Signup creates a tenant or owner account. Admin accounts cannot be
// self-registered.
func (s *Service) Signup(ctx context.Context, in SignupInput) (models.User, error) {
	user := models.User{
		Name:  strings.TrimSpace(in.Name),
		Email: models.NormalizeEmail(in.Email),
		Phone: strings.TrimSpace(in.Phone),
		Role:  in.Role,
	}
	if user.Role == "" {
		user.Role = models.ROLE_TENANT
	}
	if field := user.MissingFields(); field != "" {
		return user, apperr.Invalid(field, "is required")
	}
	if !models.ValidEmail(user.Email) {
		return user, apperr.Invalid("email", "invalid email")
	}
	if msg := tools.CheckPassword(in.Password); msg != "" {
		return user, apperr.Invalid("password", msg)
	}
	if user.Role != models.ROLE_TENANT && user.Role != models.ROLE_OWNER {
		return user, apperr.Invalid("role", "must be tenant or owner")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return user, err
	}
	user.PasswordHash = hash
	if err := s.db.Users().Create(&user); err != nil {
		var conflict *apperr.ConflictError
		if errors.As(err, &conflict) {
			return user, apperr.Conflict("email already registered")
		}
		return user, err
	}
	logger.Info("user signed up", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Authenticate checks an email/password pair. Unknown emails and wrong
// passwords both yield apperr.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.db.Users().FindByEmail(models.NormalizeEmail(email))
	if apperr.IsNotFound(err) {
		return models.User{}, apperr.ErrInvalidCredentials
	} else if err != nil {
		return models.User{}, err
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return models.User{}, apperr.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) Me(ctx context.Context, p policy.Principal) (models.User, error) {
	if err := policy.Authorize(p, policy.ActionViewSelf, policy.Resource{}); err != nil {
		return models.User{}, err
	}
	return s.db.Users().FindByID(p.ID)
}

func (s *Service) ChangePassword(ctx context.Context, p policy.Principal, current, next string) error {
	if err := policy.Authorize(p, policy.ActionChangePassword, policy.Resource{}); err != nil {
		return err
	}
	if msg := tools.CheckPassword(next); msg != "" {
		return apperr.Invalid("new_password", msg)
	}
	user, err := s.db.Users().FindByID(p.ID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(user.PasswordHash, current); err != nil {
		return apperr.ErrInvalidCredentials
	}
	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	return s.db.Users().UpdatePassword(user.ID, hash)
}

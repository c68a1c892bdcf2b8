package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/profanity"
	"github.com/kosa-java-team2/Hanger/internal/platform/validate"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid handle or password")
	ErrInvalidInput       = errors.New("invalid registration input")
)

// RegisterInput carries everything account creation needs. Age and gender are
// externally validated inputs; this core does not derive them from the
// verification identifier.
type RegisterInput struct {
	Handle         string
	DisplayName    string
	Name           string
	VerificationID string
	Age            int
	Gender         string
	Password       string
}

// Session is what a successful login hands back to the shell.
type Session struct {
	ID        string
	Handle    string
	Role      entity.Role
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(input RegisterInput) (*entity.Account, error)
	Login(handle, password string, adminOnly bool) (*Session, error)
	EnsureDefaultAdmin() error
	Account(handle string) (*entity.Account, error)
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminPassword string
}

type authService struct {
	store  repository.Store
	log    logger.Logger
	filter *profanity.Filter
	cfg    AuthConfig
}

func NewAuthService(store repository.Store, log logger.Logger, filter *profanity.Filter, cfg AuthConfig) AuthService {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &authService{store: store, log: log, filter: filter, cfg: cfg}
}

func (s *authService) Register(input RegisterInput) (*entity.Account, error) {
	if !validate.Handle(input.Handle) {
		return nil, fmt.Errorf("%w: handle must be 4-16 letters or digits", ErrInvalidInput)
	}
	if !validate.DisplayName(input.DisplayName) {
		return nil, fmt.Errorf("%w: display name must be 2-20 characters with no whitespace", ErrInvalidInput)
	}
	if !validate.VerificationID(input.VerificationID) {
		return nil, fmt.Errorf("%w: verification identifier has the wrong format", ErrInvalidInput)
	}
	if s.filter.ContainsBannedWord(input.Handle) ||
		s.filter.ContainsBannedWord(input.DisplayName) ||
		s.filter.ContainsBannedWord(input.Password) {
		return nil, fmt.Errorf("%w: banned word in handle, display name or password", ErrInvalidInput)
	}

	if _, taken := s.store.Accounts()[input.Handle]; taken {
		return nil, fmt.Errorf("handle %s: %w", input.Handle, repository.ErrAlreadyExists)
	}
	for _, a := range s.store.Accounts() {
		if a.DisplayName == input.DisplayName {
			return nil, fmt.Errorf("display name %s: %w", input.DisplayName, repository.ErrAlreadyExists)
		}
	}
	if _, seen := s.store.VerificationIDs()[input.VerificationID]; seen {
		return nil, fmt.Errorf("verification identifier: %w", repository.ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	account, err := entity.NewAccount(entity.AccountSpec{
		Handle:         input.Handle,
		DisplayName:    input.DisplayName,
		Name:           input.Name,
		VerificationID: input.VerificationID,
		Age:            input.Age,
		Gender:         input.Gender,
		Role:           entity.RoleMember,
		PasswordHash:   string(hash),
	}, now)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	s.store.Accounts()[account.Handle] = account
	s.store.VerificationIDs()[account.VerificationID] = struct{}{}

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting account %s: %v", account.Handle, err)
		return nil, err
	}

	s.log.Infof("account %s registered", account.Handle)
	return account, nil
}

func (s *authService) Login(handle, password string, adminOnly bool) (*Session, error) {
	account, ok := s.store.Accounts()[handle]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if adminOnly && !account.IsAdmin() {
		return nil, fmt.Errorf("admin-only login: %w", repository.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := jwt.MapClaims{
		"sub":  account.Handle,
		"role": string(account.Role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	s.log.Infof("account %s logged in", handle)
	return &Session{
		ID:        uuid.NewString(),
		Handle:    account.Handle,
		Role:      account.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// EnsureDefaultAdmin creates the administrative account on first run so
// report notifications always have a recipient.
func (s *authService) EnsureDefaultAdmin() error {
	if _, ok := s.store.Accounts()[AdminHandle]; ok {
		return nil
	}
	password := s.cfg.AdminPassword
	if password == "" {
		password = "admin123!"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	now := time.Now().UTC()
	admin, err := entity.NewAccount(entity.AccountSpec{
		Handle:         AdminHandle,
		DisplayName:    "administrator",
		Name:           "administrator",
		VerificationID: "000000-3000000",
		Age:            30,
		Gender:         "M",
		Role:           entity.RoleAdmin,
		PasswordHash:   string(hash),
	}, now)
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	s.store.Accounts()[admin.Handle] = admin
	s.store.VerificationIDs()[admin.VerificationID] = struct{}{}

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting default admin: %v", err)
		return err
	}
	s.log.Info("default admin account created")
	return nil
}

func (s *authService) Account(handle string) (*entity.Account, error) {
	account, ok := s.store.Accounts()[handle]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", handle, repository.ErrNotFound)
	}
	return account, nil
}

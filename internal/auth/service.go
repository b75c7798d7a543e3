package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"regexp"
	"strings"

	"travel-backend/internal/apperr"
	"travel-backend/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	// bcrypt rejects longer input
	maxPasswordLen = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Session is what register and the login endpoints hand back to the client.
type Session struct {
	Token string          `json:"token"`
	Role  models.UserRole `json:"role"`
	Name  string          `json:"name,omitempty"`
}

type AdminCredentials struct {
	Email    string
	Password string
}

type Service struct {
	db     *gorm.DB
	tokens *TokenManager
	admin  AdminCredentials
	cost   int
	log    zerolog.Logger

	// compared against when the email is unknown so both login failures cost the same
	dummyHash []byte
}

func NewService(db *gorm.DB, tokens *TokenManager, admin AdminCredentials, bcryptCost int, log *zerolog.Logger) (*Service, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), bcryptCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		db:        db,
		tokens:    tokens,
		admin:     admin,
		cost:      bcryptCost,
		log:       log.With().Str("component", "auth").Logger(),
		dummyHash: dummy,
	}, nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user with role "user" and returns a fresh session.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" || in.Email == "" || in.Password == "" || len(in.Password) < minPasswordLen || !validEmail(in.Email) {
		return nil, apperr.Validation("Invalid input. Name, valid email, and password (min 6 chars) are required.")
	}
	if len(in.Password) > maxPasswordLen {
		return nil, apperr.Validation("Password must be at most 72 bytes.")
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", in.Email).Count(&existing).Error; err != nil {
		return nil, apperr.Internal("Server error during registration.", err)
	}
	if existing > 0 {
		return nil, apperr.Conflict("User already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, apperr.Internal("Server error during registration.", err)
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// lost a race with a concurrent registration for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("User already exists.")
		}
		return nil, apperr.Internal("Server error during registration.", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperr.Internal("Server error during registration.", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user registered")
	return &Session{Token: token, Role: user.Role, Name: user.Name}, nil
}

// Login authenticates a user with role "user". Unknown email and wrong
// password fail identically.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	return s.login(ctx, in, models.RoleUser)
}

func (s *Service) login(ctx context.Context, in LoginInput, role models.UserRole) (*Session, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" || !validEmail(in.Email) {
		return nil, apperr.Validation("Invalid input. Valid email and password are required.")
	}

	invalid := apperr.InvalidCredentials("Invalid Credentials.")

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ? AND role = ?", in.Email, role).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
		return nil, invalid
	}
	if err != nil {
		return nil, apperr.Internal("Server error during login.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, invalid
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperr.Internal("Server error during login.", err)
	}
	return &Session{Token: token, Role: user.Role, Name: user.Name}, nil
}

// AdminLogin checks against the configured admin credentials; there is no
// admin row in the store. The resulting identity always has id 0.
func (s *Service) AdminLogin(in LoginInput) (*Session, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("Email and password are required.")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(in.Email), []byte(s.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(in.Password), []byte(s.admin.Password)) == 1
	if !emailOK || !passOK {
		s.log.Warn().Msg("admin login rejected")
		return nil, apperr.Unauthorized("Invalid Admin Credentials.")
	}

	token, err := s.tokens.Issue(0, s.admin.Email, models.RoleAdmin)
	if err != nil {
		return nil, apperr.Internal("Server error during login.", err)
	}
	return &Session{Token: token, Role: models.RoleAdmin}, nil
}

// Profile describes the identity behind a verified token.
type Profile struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name,omitempty"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// Me resolves the caller. The admin identity has no row, so its profile
// comes from the claims alone.
func (s *Service) Me(ctx context.Context, claims *Claims) (*Profile, error) {
	if claims.Role == models.RoleAdmin {
		return &Profile{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
	}

	var user models.User
	err := s.db.WithContext(ctx).First(&user, claims.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found.")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to load user.", err)
	}
	return &Profile{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

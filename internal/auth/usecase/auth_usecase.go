package usecase

import (
	"errors"
	"regexp"
	"time"

	authdomain "todo-backend/internal/auth/domain"
	authdto "todo-backend/internal/auth/dto"
	"todo-backend/internal/auth/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const accessAuth = "auth"

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// tokenClaims binds a token to a user id and a purpose tag. Tokens carry
// no expiry: they stay valid until logout removes them from the user's
// stored token list, and rotating the signing secret revokes everything.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Access string `json:"access"`
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

// NewAuthUsecase creates a new instance of authUsecase. The signing
// secret is injected here so tests can isolate it and rotation needs no
// process-wide state.
func NewAuthUsecase(userRepo repository.UserRepository, jwtSecret string) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, string, error) {
	if !emailRe.MatchString(req.Email) || len(req.Password) < 6 {
		return nil, "", ErrValidation
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		// Two concurrent registrations can pass the lookup above; the
		// unique index on email is the arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	return u.issueToken(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, string, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	return u.issueToken(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return u.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Access != accessAuth || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	// A valid signature is not enough: logout removes the token from the
	// user's stored list, after which it must stop working.
	stored, err := u.userRepo.FindToken(claims.UserID, tokenString)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (u *authUsecase) Logout(userID, token string) error {
	return u.userRepo.RemoveToken(userID, token)
}

func (u *authUsecase) issueToken(user *authdomain.User) (*authdomain.User, string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique per token so two logins are two revocable sessions
			ID:       uuid.New().String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
		Access: accessAuth,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	if err := u.userRepo.AddToken(user.ID, signed); err != nil {
		return nil, "", err
	}

	return user, signed, nil
}

package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"librarymgmt/model"
	userrepo "librarymgmt/repository/user"
	"librarymgmt/util/hash"
	jwtutil "librarymgmt/util/jwt"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid credentials")
	ErrInactive     = errors.New("inactive user")
)

type Service interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Resolve(ctx context.Context, subject string) (*model.User, error)
	EnsureAdmin(ctx context.Context) error
}

type service struct {
	ur            userrepo.Repo
	secret        string
	ttl           time.Duration
	adminEmail    string
	adminPassword string
}

func New(ur userrepo.Repo, secret string, ttl time.Duration, adminEmail, adminPassword string) Service {
	return &service{
		ur:            ur,
		secret:        secret,
		ttl:           ttl,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (s *service) Register(ctx context.Context, email, password string) (*model.User, error) {
	return s.create(ctx, email, password, false)
}

func (s *service) create(ctx context.Context, email, password string, superuser bool) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.ur.ByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
		IsSuperuser:    superuser,
	}
	if err := s.ur.Create(ctx, u); err != nil {
		// two signups racing past the pre-lookup land here
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// unknown email and wrong password are indistinguishable
			return "", ErrInvalidCreds
		}
		return "", err
	}
	if !hash.Check(u.HashedPassword, password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, u.Email, s.ttl)
}

func (s *service) Resolve(ctx context.Context, subject string) (*model.User, error) {
	u, err := s.ur.ByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCreds
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInactive
	}
	return u, nil
}

// EnsureAdmin creates the configured first admin user if it does not
// exist yet. Called once at startup.
func (s *service) EnsureAdmin(ctx context.Context) error {
	_, err := s.create(ctx, s.adminEmail, s.adminPassword, true)
	if errors.Is(err, ErrEmailTaken) {
		return nil
	}
	return err
}

// Package services contains server-side business logic. This file implements
// AccountService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/auth"
	"github.com/avolkovs/pinpoint/internal/server/config"
	"github.com/avolkovs/pinpoint/internal/server/models"
	"github.com/avolkovs/pinpoint/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hashing time against brute-force resistance.
const bcryptCost = 12

// dummyHash is compared against when the account does not exist, so a login
// for an unknown email costs the same as one with a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AccountService provides authentication-related operations:
// - Register: create accounts and mint an initial token
// - Login: verify credentials and mint tokens
type AccountService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account with a bcrypt-hashed password and returns it
// along with a fresh access token. A duplicate email yields
// common.ErrorAlreadyExists.
func (s *AccountService) Register(ctx context.Context, email, password string, name *string) (*models.Account, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{Email: email, Password: string(hash), Name: name}
	repo := s.repomanager.Accounts(s.db)
	a, err := repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		return nil, "", fmt.Errorf("error creating account: %w", err)
	}

	token, err := s.generateAccessToken(a.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return a, token, nil
}

// Login verifies the provided password against the stored bcrypt hash and,
// on success, returns a new access token. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same bcrypt work as a real comparison
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := s.generateAccessToken(account.ID)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Get returns the account for an authenticated subject id. Used by the
// profile endpoint; the password hash never leaves the model's JSON shape.
func (s *AccountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return account, nil
}

func (s *AccountService) generateAccessToken(accountID int64) (string, error) {
	return auth.GenerateToken(fmt.Sprintf("%d", accountID), s.jwtSecret, s.accessTokenValidityDuration)
}

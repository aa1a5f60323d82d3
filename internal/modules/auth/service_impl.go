package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/storefront/internal/modules/user"
)

type service struct {
	userRepo user.Repository
	key      []byte
	ttl      time.Duration
	log      log.FieldLogger
}

// NewService creates a new auth service signing tokens with secret.
func NewService(userRepo user.Repository, secret string, ttl time.Duration, logger log.FieldLogger) Service {
	return &service{userRepo: userRepo, key: []byte(secret), ttl: ttl, log: logger}
}

// Login signs in the first user whose name and password match. The token
// carries sessionID so log lines from the terminal session and the token agree;
// a fresh id is used when none is given.
func (s *service) Login(ctx context.Context, sessionID, name, password string) (string, *Principal, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	users, err := s.userRepo.ListUsersByName(ctx, name)
	if err != nil {
		return "", nil, err
	}

	for _, u := range users {
		if !passwordMatches(u.Password, password) {
			continue
		}
		p := &Principal{UserID: u.ID, Name: u.Name, SessionID: sessionID}
		token, err := s.issue(p)
		if err != nil {
			return "", nil, err
		}
		s.log.WithFields(log.Fields{"user": u.ID, "session": p.SessionID}).Info("signed in")
		return token, p, nil
	}

	s.log.WithField("name", name).Debug("login rejected")
	return "", nil, ErrInvalidCredentials
}

func (s *service) Verify(ctx context.Context, token string) (*Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q", ErrInvalidToken, claims.Subject)
	}
	return &Principal{UserID: id, Name: claims.Name, SessionID: claims.Id}, nil
}

func (s *service) issue(p *Principal) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name: p.Name,
		StandardClaims: jwt.StandardClaims{
			Id:        p.SessionID,
			Subject:   strconv.Itoa(p.UserID),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}
	return tokenString, nil
}

// passwordMatches accepts a bcrypt hash or, for rows inserted outside the
// client, the plaintext password itself.
func passwordMatches(stored, given string) bool {
	if _, err := bcrypt.Cost([]byte(stored)); err == nil {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// Package session implements the mocked dashboard login and the JWT session
// tokens it issues. The credential check is a demo fixture against two fixed
// username/password pairs; it must not be treated as a security boundary.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"aegiswhistle/backend/internal/config"
	"aegiswhistle/backend/internal/models"
)

var (
	// ErrUnknownRole is returned when the requested role is neither officer
	// nor investigator.
	ErrUnknownRole = errors.New("unknown role")
	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid token or expired")
)

// Manager checks demo credentials and mints/verifies session tokens.
type Manager struct {
	secret []byte
}

// NewManager creates a session manager signing tokens with the given secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Login checks the supplied credentials against the fixed pair for the role.
// On mismatch the error names exactly which field(s) differed, so the UI can
// surface a descriptive notification.
func (m *Manager) Login(role models.Role, username, password string) (*models.Session, error) {
	var wantUser, wantPass string
	switch role {
	case models.RoleOfficer:
		wantUser, wantPass = config.OfficerUsername, config.OfficerPassword
	case models.RoleInvestigator:
		wantUser, wantPass = config.InvestigatorUsername, config.InvestigatorPassword
	default:
		return nil, ErrUnknownRole
	}

	var reasons []string
	if username != wantUser {
		reasons = append(reasons, "username")
	}
	if password != wantPass {
		reasons = append(reasons, "password")
	}
	if len(reasons) > 0 {
		return nil, fmt.Errorf("invalid %s for %s", strings.Join(reasons, " and "), roleTitle(role))
	}

	return &models.Session{Role: role, Username: username}, nil
}

// IssueToken mints a signed JWT carrying the session.
func (m *Manager) IssueToken(sess *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"role":     string(sess.Role),
		"username": sess.Username,
		"exp":      time.Now().Add(config.TokenTTL).Unix(),
		"iss":      config.JWTIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken parses a session token back into the session it carries.
func (m *Manager) VerifyToken(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	username, _ := claims["username"].(string)
	if role == "" || username == "" {
		return nil, ErrInvalidToken
	}

	return &models.Session{Role: models.Role(role), Username: username}, nil
}

func roleTitle(role models.Role) string {
	if role == models.RoleOfficer {
		return "Ethics Officer"
	}
	return "Investigator"
}

package security

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/config"
)

// Claims são os dados de identidade embutidos no token
type Claims struct {
	Email         string
	Role          string
	Name          string
	IDFuncionario string
}

// TokenService emite e verifica tokens JWT assinados com HMAC-SHA256.
// Issuer, audience, subject e janela de validade vêm da configuração.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	subject  string
	validity time.Duration
}

// NewTokenService cria um TokenService a partir da configuração
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		subject:  cfg.Subject,
		validity: time.Duration(cfg.ValidityDays) * 24 * time.Hour,
	}
}

// Issue gera um token JWT com as claims padrão (iss, aud, sub, iat,
// exp, jti) mais as claims de identidade informadas pelo chamador.
func (s *TokenService) Issue(custom map[string]string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"aud": s.audience,
		"sub": s.subject,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(s.validity)),
		"jti": uuid.NewString(),
	}

	for key, value := range custom {
		claims[key] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida assinatura, issuer, audience e expiração (sem
// tolerância de relógio) e retorna as claims de identidade.
// Qualquer problema estrutural ou de expiração resulta em ok=false;
// este método nunca propaga erro além desta fronteira.
func (s *TokenService) Verify(tokenString string) (*Claims, bool) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer"))
	if tokenString == "" {
		return nil, false
	}

	parsed, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	stringClaim := func(key string) string {
		value, _ := mapClaims[key].(string)
		return value
	}

	return &Claims{
		Email:         stringClaim("email"),
		Role:          stringClaim("role"),
		Name:          stringClaim("name"),
		IDFuncionario: stringClaim("idFuncionario"),
	}, true
}

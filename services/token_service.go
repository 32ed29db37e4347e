package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "shareit-gateway"
	tokenTTL    = time.Minute
)

// ITokenService はゲートウェイからサーバーへの呼び出しに付けるサービストークンを扱う
type ITokenService interface {
	Issue(userID uint) (string, error)
	Verify(tokenString string) (uint, error)
}

type TokenService struct {
	secret []byte
	clock  Clock
}

func NewTokenService(secret string, clock Clock) ITokenService {
	return &TokenService{secret: []byte(secret), clock: clock}
}

// Issue は sub に呼び出し元ユーザー ID を入れた HS256 トークンを作る。userID が 0 なら sub は空
func (s *TokenService) Issue(userID uint) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	if userID != 0 {
		claims.Subject = strconv.FormatUint(uint64(userID), 10)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify は署名と有効期限を検証し sub のユーザー ID を返す
func (s *TokenService) Verify(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return 0, err
	}
	if claims.Subject == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q: %w", claims.Subject, err)
	}
	return uint(id), nil
}

package users

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"gopkg.in/mgo.v2/bson"
)

var InvalidToken = errors.New("Token is not valid anymore.")

// UserToken are the session claims signed into the bearer token.
type UserToken struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

func SignToken(id bson.ObjectId, secret string, expiration int) (string, error) {
	claims := UserToken{
		id.Hex(),
		jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour * time.Duration(expiration)).Unix(),
			Issuer:    "mirador",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(signed, secret string) (UserToken, error) {
	var claims UserToken

	token, err := jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return claims, err
	}

	if !token.Valid {
		return claims, InvalidToken
	}

	return claims, nil
}

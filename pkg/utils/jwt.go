package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(userID string, userName string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["name"] = userName
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractUserID returns the caller id placed in the context by the auth
// middleware, or an empty string when the request is unauthenticated.
func ExtractUserID(c echo.Context) string {
	userID, ok := c.Get("userID").(string)
	if !ok {
		return ""
	}
	return userID
}

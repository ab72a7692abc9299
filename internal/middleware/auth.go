package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/Delvoid/ecom-admin/pkg/errs"
	"github.com/Delvoid/ecom-admin/pkg/response"
)

// RequireAuth verifies the identity-provider bearer token and places the
// caller id into the request context. Mutating routes are registered with
// this middleware; it rejects before any payload is read.
func RequireAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrUnauthenticated, nil)
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return response.WriteErrorResponse(c, errs.ErrUnauthenticated, nil)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrUnauthenticated, nil)
			}

			userID, _ := claims["userID"].(string)
			if userID == "" {
				return response.WriteErrorResponse(c, errs.ErrUnauthenticated, nil)
			}

			c.Set("userID", userID)

			return next(c)
		}
	}
}

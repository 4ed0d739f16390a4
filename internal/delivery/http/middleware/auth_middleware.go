package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and threads the actor's
// identity into the request context. The employer flag is read fresh from
// the database rather than trusted from the token.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil || userID == 0 {
			response.Error(c, http.StatusUnauthorized, "Invalid subject claim", nil)
			c.Abort()
			return
		}

		user, profile, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyIsEmployer), profile.IsEmployer)

		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid token is present but lets
// anonymous requests through. Used by public endpoints that personalize
// their output (job detail).
func OptionalAuth(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}
		sub, _ := claims["sub"].(string)
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil || userID == 0 {
			c.Next()
			return
		}

		if user, profile, err := authUC.GetCurrentUser(c.Request.Context(), userID); err == nil {
			c.Set(string(domain.KeyUserID), user.ID)
			c.Set(string(domain.KeyUsername), user.Username)
			c.Set(string(domain.KeyUserEmail), user.Email)
			c.Set(string(domain.KeyIsEmployer), profile.IsEmployer)
		}

		c.Next()
	}
}

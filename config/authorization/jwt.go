package authorization

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"medwebcare/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Guest  bool   `json:"guest"`
	jwt.RegisteredClaims
}

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "medwebcare-dev-secret"
	}
	return []byte(s)
}

/*
* Generate a signed token carrying id, email and role
 */
func GenerateJWT(userID, email, role string, guest bool) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Guest:  guest,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

/*
* Resolve the bearer token on every protected route
* Absent or invalid identity routes back to the sign-in screen
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenStr == "" {
			c.Redirect(http.StatusTemporaryRedirect, util.AuthRoute)
			c.Abort()
			return
		}
		claims, err := ParseToken(tokenStr)
		if err != nil {
			log.Println("Error while parsing token:", err)
			c.Redirect(http.StatusTemporaryRedirect, util.AuthRoute)
			c.Abort()
			return
		}
		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("guest", claims.Guest)
		c.Next()
	}
}

/*
* Gate a dashboard behind its expected role
* A mismatched role is sent to the counterpart dashboard, not rejected
 */
func RequireRole(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == expected {
			c.Next()
			return
		}
		target := util.PatientDashboardRoute
		if role == "doctor" {
			target = util.DoctorDashboardRoute
		}
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}

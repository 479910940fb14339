package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-api/internal/clock"
)

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func Login(authn Authenticator, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := bind(c, &req); err != nil {
			fail(c, err)
			return
		}

		sess, err := authn.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			fail(c, err)
			return
		}

		expiresIn := int64(sess.Token.ExpiresAt.Sub(clk.Now()).Seconds())
		c.JSON(http.StatusOK, gin.H{
			"message": "Login berhasil",
			"session": gin.H{
				"access_token": sess.Token.Value,
				"token_type":   "bearer",
				"expires_in":   expiresIn,
				"expires_at":   sess.Token.ExpiresAt.Unix(),
			},
			"user": gin.H{
				"id":    sess.User.ID,
				"email": sess.User.Email,
			},
		})
	}
}

func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          identity(c),
		})
	}
}

// Logout revokes the presented token until it would have expired.
func Logout(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authn.Logout(c.Request.Context(), identity(c)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logout berhasil"})
	}
}

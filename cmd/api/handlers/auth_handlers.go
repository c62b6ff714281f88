package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"comment-pilot/cmd/api/auth"
	"comment-pilot/cmd/api/dto"
	"comment-pilot/cmd/internal/logger"
)

const oauthStateCookie = "oauth_state"

// LoginHandler redirects the browser into the Google OAuth consent flow.
func LoginHandler(oauthClient *auth.GoogleOAuthClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := uuid.NewString()
		c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
		c.Redirect(http.StatusFound, oauthClient.AuthCodeURL(state))
	}
}

// CallbackHandler exchanges the OAuth code and issues the session token
// carrying the user id and platform access token.
func CallbackHandler(oauthClient *auth.GoogleOAuthClient, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := c.Cookie(oauthStateCookie)
		if err != nil || state == "" || state != c.Query("state") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "oauth state mismatch"})
			return
		}

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing oauth code"})
			return
		}

		token, err := oauthClient.Exchange(c.Request.Context(), code)
		if err != nil {
			logger.Log.Errorf("oauth exchange failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "oauth exchange failed"})
			return
		}

		info, err := oauthClient.FetchUserInfo(c.Request.Context(), token)
		if err != nil {
			logger.Log.Errorf("oauth userinfo failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not load user info"})
			return
		}

		sessionToken, err := jwtManager.Sign(auth.Identity{
			UserID:      info.Sub,
			AccessToken: token.AccessToken,
		})
		if err != nil {
			logger.Log.Errorf("session token sign failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session token"})
			return
		}

		c.JSON(http.StatusOK, dto.TokenResponse{Token: sessionToken, Email: info.Email, Name: info.Name})
	}
}

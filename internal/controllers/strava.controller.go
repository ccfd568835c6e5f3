package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"time"

	"runlog/internal/importer"
	"runlog/internal/models"
	"runlog/internal/repository"
	"runlog/internal/strava"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const stravaAuthURL = "https://www.strava.com/oauth/authorize"

// tokenRefreshLeeway refreshes access tokens that expire within a minute, so
// a token cannot lapse between refresh and fetch.
const tokenRefreshLeeway = 60 * time.Second

type StravaController struct {
	accountRepo repository.StravaAccountRepository
	importer    *importer.Importer
	client      *strava.Client
}

func NewStravaController(accountRepo repository.StravaAccountRepository, imp *importer.Importer, client *strava.Client) *StravaController {
	return &StravaController{accountRepo: accountRepo, importer: imp, client: client}
}

// Status godoc
// @Summary Strava link status
// @Tags strava
// @Produce json
// @Success 200 {object} map[string]interface{} "Status retrieved successfully"
// @Router /integrations/strava/status [get]
func (sc *StravaController) Status(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	account, err := sc.accountRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Status retrieved successfully",
			"data":    gin.H{"connected": false},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status retrieved successfully",
		"data": gin.H{
			"connected":    true,
			"athlete_id":   account.AthleteID,
			"connected_at": account.CreatedAt,
		},
	})
}

// Connect godoc
// @Summary Redirect to Strava OAuth
// @Description Browser navigation endpoint; accepts the JWT as a query parameter and redirects to Strava
// @Tags strava
// @Param token query string true "Access token"
// @Success 307 "Redirect to Strava"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /integrations/strava/connect [get]
func (sc *StravaController) Connect(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Missing token",
			"error":   "The token query parameter is required",
		})
		return
	}

	claims, err := parseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired token",
			"error":   err.Error(),
		})
		return
	}
	userID := uint(claims["user_id"].(float64))

	state, err := signStateToken(userID, "strava")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate state token",
			"error":   err.Error(),
		})
		return
	}

	params := url.Values{
		"client_id":     {os.Getenv("STRAVA_CLIENT_ID")},
		"response_type": {"code"},
		"redirect_uri":  {os.Getenv("STRAVA_REDIRECT_URI")},
		"scope":         {"activity:read"},
		"state":         {state},
	}
	c.Redirect(http.StatusTemporaryRedirect, stravaAuthURL+"?"+params.Encode())
}

// Callback godoc
// @Summary Strava OAuth callback
// @Description Exchanges the authorization code and stores the token pair
// @Tags strava
// @Param code query string true "Authorization code"
// @Param state query string true "Signed state token"
// @Success 307 "Redirect to frontend"
// @Failure 400 {object} map[string]interface{} "Missing parameters"
// @Failure 403 {object} map[string]interface{} "Invalid state"
// @Router /integrations/strava/callback [get]
func (sc *StravaController) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing parameters from Strava response",
			"error":   "Both code and state are required",
		})
		return
	}

	claims, err := parseToken(state)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Invalid or expired state",
			"error":   err.Error(),
		})
		return
	}
	purpose, _ := claims["purpose"].(string)
	if purpose != "strava" {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Invalid state",
			"error":   "State token was not issued for Strava linking",
		})
		return
	}
	userID := uint(claims["user_id"].(float64))

	token, err := sc.client.ExchangeCode(code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to exchange code with Strava",
			"error":   err.Error(),
		})
		return
	}

	account := models.StravaAccount{
		UserID:       userID,
		AthleteID:    token.Athlete.ID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.ExpiresAt,
	}
	if err := sc.accountRepo.Upsert(&account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store Strava account",
			"error":   err.Error(),
		})
		return
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}
	c.Redirect(http.StatusTemporaryRedirect, frontendURL+"/profile?strava=connected")
}

// Import godoc
// @Summary Import recent runs from Strava
// @Description Refreshes the cached token when near expiry, fetches recent activities and imports the runs, skipping duplicates
// @Tags strava
// @Produce json
// @Success 200 {object} map[string]interface{} "Import completed"
// @Failure 400 {object} map[string]interface{} "No linked Strava account"
// @Failure 502 {object} map[string]interface{} "Strava unavailable"
// @Router /integrations/strava/import [post]
func (sc *StravaController) Import(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	account, err := sc.accountRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Strava account not linked",
			"error":   "Connect a Strava account before importing",
		})
		return
	}

	// Refresh must complete, and the new pair must be persisted, before the
	// fetch; a failure in either aborts the import with no partial writes.
	accessToken := account.AccessToken
	if account.TokenExpiringWithin(tokenRefreshLeeway) {
		refreshed, err := sc.client.RefreshToken(account.RefreshToken)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"status":  "error",
				"message": "Failed to refresh Strava token",
				"error":   err.Error(),
			})
			return
		}
		if err := sc.accountRepo.UpdateTokens(userID, refreshed.AccessToken, refreshed.RefreshToken, refreshed.ExpiresAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to store refreshed Strava token",
				"error":   err.Error(),
			})
			return
		}
		accessToken = refreshed.AccessToken
	}

	activities, err := sc.client.FetchActivities(accessToken)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to fetch activities from Strava",
			"error":   err.Error(),
		})
		return
	}

	var runs []strava.Activity
	for _, a := range activities {
		if a.IsRun() {
			runs = append(runs, a)
		}
	}
	if len(runs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "No runs found on Strava",
			"data":    gin.H{"imported": 0, "skipped": 0},
		})
		return
	}

	result, err := sc.importer.ImportStravaActivities(userID, runs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to import runs",
			"error":   err.Error(),
		})
		return
	}

	message := "All Strava runs were already imported"
	if result.Imported > 0 {
		message = "Strava runs imported successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data":    gin.H{"imported": result.Imported, "skipped": result.Skipped},
	})
}

// Disconnect godoc
// @Summary Unlink the Strava account
// @Tags strava
// @Produce json
// @Success 200 {object} map[string]interface{} "Account disconnected"
// @Failure 400 {object} map[string]interface{} "No linked Strava account"
// @Router /integrations/strava/disconnect [delete]
func (sc *StravaController) Disconnect(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	if err := sc.accountRepo.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Strava account not linked",
				"error":   "There is no Strava account to disconnect",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to disconnect Strava account",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Strava account disconnected",
	})
}

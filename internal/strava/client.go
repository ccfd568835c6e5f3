package strava

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	tokenURL      = "https://www.strava.com/oauth/token"
	activitiesURL = "https://www.strava.com/api/v3/athlete/activities"

	// fetchPerPage bounds one import to the most recent activities.
	fetchPerPage = 30
)

// ErrUpstream wraps any Strava-side failure: unreachable service, rejected
// credential, failed refresh. Callers surface it as one opaque upstream error.
var ErrUpstream = errors.New("strava request failed")

// TokenResponse is the payload of both the code exchange and the refresh
// exchange.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Athlete      struct {
		ID int64 `json:"id"`
	} `json:"athlete"`
}

// Activity is one upstream activity record, distance in meters and moving
// time in seconds.
type Activity struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	StartDate  time.Time `json:"start_date"`
	Distance   float64   `json:"distance"`
	MovingTime int       `json:"moving_time"`
}

// IsRun reports whether the upstream activity is in Strava's running
// category; everything else is ignored by the importer.
func (a Activity) IsRun() bool {
	return a.Type == "Run"
}

type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// ExchangeCode trades an OAuth authorization code for a token pair.
func (c *Client) ExchangeCode(code string) (*TokenResponse, error) {
	return c.tokenRequest(url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
	})
}

// RefreshToken trades a refresh token for a fresh access token pair.
func (c *Client) RefreshToken(refreshToken string) (*TokenResponse, error) {
	return c.tokenRequest(url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	})
}

func (c *Client) tokenRequest(form url.Values) (*TokenResponse, error) {
	resp, err := c.httpClient.Post(tokenURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: token endpoint returned %d", ErrUpstream, resp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &token, nil
}

// FetchActivities lists the athlete's most recent activities.
func (c *Client) FetchActivities(accessToken string) ([]Activity, error) {
	req, err := http.NewRequest(http.MethodGet,
		fmt.Sprintf("%s?per_page=%d", activitiesURL, fetchPerPage), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: activities endpoint returned %d", ErrUpstream, resp.StatusCode)
	}

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return activities, nil
}

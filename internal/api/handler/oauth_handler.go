package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/snapcart/marketplace/internal/api/metrics"
	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

const (
	stateCookieName = "oauth_state"
	stateCookieTTL  = 5 * time.Minute
	userInfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthHandler drives the Google login flow: redirect with a state nonce,
// then callback → profile resolution → bearer token → frontend redirect.
type OAuthHandler struct {
	oauth       *oauth2.Config
	states      ports.OAuthStateStore
	resolver    ports.OAuthResolver
	tokens      ports.TokenIssuer
	frontendURL string
	logger      zerolog.Logger
}

func NewOAuthHandler(
	oauth *oauth2.Config,
	states ports.OAuthStateStore,
	resolver ports.OAuthResolver,
	tokens ports.TokenIssuer,
	frontendURL string,
	logger zerolog.Logger,
) *OAuthHandler {
	return &OAuthHandler{
		oauth:       oauth,
		states:      states,
		resolver:    resolver,
		tokens:      tokens,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// googleProfile is the subset of the userinfo response the resolver needs.
type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleRedirect handles GET /auth/google.
//
// @Summary      Start the Google OAuth login flow
// @Tags         auth
// @Success      302
// @Router       /auth/google [get]
func (h *OAuthHandler) GoogleRedirect(c echo.Context) error {
	state, err := randomState()
	if err != nil {
		return err
	}
	if err := h.states.Save(c.Request().Context(), state); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(stateCookieTTL),
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// GoogleCallback handles GET /auth/google/callback. On success the browser is
// redirected to the frontend with the bearer token and the user record as
// query parameters; that query contract is what the frontend consumes.
//
// @Summary      Google OAuth callback
// @Tags         auth
// @Success      302
// @Failure      403  {object}  Envelope
// @Router       /auth/google/callback [get]
func (h *OAuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("state")
	cookie, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || cookie.Value != state {
		metrics.AuthFailuresTotal.WithLabelValues("oauth_state_mismatch").Inc()
		return domain.ErrUnauthorized
	}
	ok, err := h.states.Consume(ctx, state)
	if err != nil {
		return err
	}
	if !ok {
		metrics.AuthFailuresTotal.WithLabelValues("oauth_state_mismatch").Inc()
		return domain.ErrUnauthorized
	}

	code := c.QueryParam("code")
	if code == "" {
		return domain.ErrUnauthorized
	}

	tok, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("oauth_exchange").Inc()
		h.logger.Warn().Err(err).Msg("oauth code exchange failed")
		return domain.ErrUnauthorized
	}

	profile, err := h.fetchProfile(c, tok)
	if err != nil {
		h.logger.Warn().Err(err).Msg("oauth userinfo fetch failed")
		return domain.ErrUnauthorized
	}

	user, err := h.resolver.Resolve(ctx, ports.OAuthProfile{
		ProviderID:  profile.ID,
		Email:       profile.Email,
		DisplayName: profile.Name,
		AvatarURL:   profile.Picture,
	})
	if err != nil {
		return err
	}

	bearer, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return err
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("oauth").Inc()

	redirect := h.frontendURL + "/oauth/callback?token=" + url.QueryEscape(bearer) +
		"&userData=" + url.QueryEscape(string(userData))
	return c.Redirect(http.StatusFound, redirect)
}

func (h *OAuthHandler) fetchProfile(c echo.Context, tok *oauth2.Token) (*googleProfile, error) {
	client := h.oauth.Client(c.Request().Context(), tok)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/config"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/repository"
	"github.com/iliyamo/cinema-booking/internal/store"
	"github.com/iliyamo/cinema-booking/internal/utils"
)

const errBadCredentials = "Invalid email or password"

// AuthHandler signs session users in and out and issues access tokens.
type AuthHandler struct {
	Cfg      config.Config
	Catalog  *repository.Catalog
	Sessions *store.Sessions
	Log      *zap.Logger
}

func NewAuthHandler(cfg config.Config, c *repository.Catalog, sessions *store.Sessions, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{Cfg: cfg, Catalog: c, Sessions: sessions, Log: log}
}

// ----- DTOs -----

type loginReq struct {
	Login    string `json:"login"` // email or username
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User   model.Profile `json:"user"`
	Access tokenPart     `json:"access"`
}

func (h *AuthHandler) session(c echo.Context) *store.Session {
	return h.Sessions.Get(c.Request().Context(), middleware.SessionID(c))
}

// Login authenticates against the catalog's users, signs the
// session user in and returns an access token.  Banned accounts are
// refused.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	login := strings.TrimSpace(req.Login)
	if login == "" {
		login = strings.TrimSpace(req.Email)
	}
	if login == "" || req.Password == "" {
		return badRequest(c, "login/password required")
	}

	sess := h.session(c)
	sess.User.SignInStart()

	u, err := h.Catalog.Authenticate(login, req.Password)
	if err != nil {
		h.Log.Debug("sign-in rejected", zap.String("login", login), zap.Error(err))
		sess.User.SignInFailure(errBadCredentials)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": errBadCredentials})
	}
	if u.Status == model.UserBanned {
		sess.User.SignInFailure("Account is banned")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "account is banned"})
	}

	profile, _ := h.Catalog.Profile(u.ID)
	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		h.Log.Error("issue access token", zap.Int64("user_id", u.ID), zap.Error(err))
		sess.User.SignInFailure("could not issue token")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	sess.User.SignInSuccess(c.Request().Context(), profile)
	h.Log.Info("user signed in", zap.Int64("user_id", u.ID), zap.String("session_id", sess.ID))

	return c.JSON(http.StatusOK, authResp{User: profile, Access: tokenPart{Token: tok.Token, Expires: tok.Exp}})
}

// Logout signs the session user out.  It is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session(c).User.SignOut(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the full user state of the session, including the last
// sign-in error.
func (h *AuthHandler) Me(c echo.Context) error {
	st := h.session(c).User.State()
	if !st.IsLoggedIn {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in", "state": st})
	}
	return c.JSON(http.StatusOK, st)
}

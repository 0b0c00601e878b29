package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ptiadmin_backend/internals/features/users/auth/service"
	helper "ptiadmin_backend/internals/helpers"
)

const AccessCookie = "access_token"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required,max=200"`
}

type AuthController struct {
	Auth         *service.AuthService
	Validator    *validator.Validate
	SecureCookie bool
	Log          *zap.Logger
}

func NewAuthController(auth *service.AuthService, secureCookie bool, log *zap.Logger) *AuthController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthController{Auth: auth, Validator: validator.New(), SecureCookie: secureCookie, Log: log.Named("auth")}
}

func (ctl *AuthController) sameSite() string {
	if ctl.SecureCookie {
		return "None"
	}
	return "Lax"
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sess, err := ctl.Auth.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		ctl.Log.Info("login rejected", zap.String("username", req.Username), zap.String("ip", c.IP()))
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuario o contraseña incorrectos")
	case errors.Is(err, service.ErrLoginDisabled):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Inicio de sesión no configurado")
	case err != nil:
		ctl.Log.Error("login", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}

	c.Cookie(&fiber.Cookie{
		Name:     AccessCookie,
		Value:    sess.Token,
		HTTPOnly: true,
		Secure:   ctl.SecureCookie,
		SameSite: ctl.sameSite(),
		Path:     "/",
		Expires:  sess.ExpiresAt,
	})
	return helper.JsonOK(c, "Sesión iniciada", sess)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     AccessCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   ctl.SecureCookie,
		SameSite: ctl.sameSite(),
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	return helper.JsonOK(c, "Sesión cerrada", nil)
}

// GET /api/a/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", fiber.Map{
		"user_name": c.Locals("user_name"),
		"role":      c.Locals("userRole"),
	})
}

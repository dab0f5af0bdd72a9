package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"miniblog/internal/app"
	"miniblog/internal/config"
)

type AuthHandler struct {
	authService *app.AuthService
	authCfg     config.AuthConfig
}

type SignupForm struct {
	Username string `form:"username" binding:"required,max=20"`
	Password string `form:"password" binding:"required,max=128"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required,max=20"`
	Password string `form:"password" binding:"required,max=128"`
}

func NewAuthHandler(authService *app.AuthService, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{authService: authService, authCfg: authCfg}
}

func (h *AuthHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Username": ""})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error":    "username and password are required",
			"Username": form.Username,
		})
		return
	}

	_, err := h.authService.Signup(app.SignupInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsernameExists):
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{
				"Error":    "username already taken",
				"Username": form.Username,
			})
		case errors.Is(err, app.ErrInvalidInput):
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{
				"Error":    "username and password are required",
				"Username": form.Username,
			})
		default:
			c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
				"Error":    "signup failed, try again",
				"Username": form.Username,
			})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Error":    c.Query("error"),
		"Username": "",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error":    "username and password are required",
			"Username": form.Username,
		})
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredential), errors.Is(err, app.ErrInvalidInput):
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error":    "wrong username or password",
				"Username": form.Username,
			})
		default:
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{
				"Error":    "login failed, try again",
				"Username": form.Username,
			})
		}
		return
	}

	h.setSessionCookie(c, result.Token)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := h.authCfg.SessionTTLMinute * 60
	c.SetCookie(h.authCfg.SessionCookie, token, maxAge, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.authCfg.SessionCookie, "", -1, "/", "", false, true)
}

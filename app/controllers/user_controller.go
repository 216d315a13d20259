package controllers

import (
	"errors"
	"net/http"

	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/app/services"
	"eshop-back/pkg/bind"
	"eshop-back/pkg/logger"
	"eshop-back/pkg/response"
)

// UserController serves registration, login and the admin user surface.
type UserController struct {
	auth  *services.AuthService
	users *repositories.UserRepository
}

func NewUserController(auth *services.AuthService, users *repositories.UserRepository) *UserController {
	return &UserController{auth: auth, users: users}
}

// registerRequest accepts the password under either key: the storefront
// sends it as passwordHash, the name the column happened to have.
type registerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password"`
	PasswordHash string `json:"passwordHash"`
}

func (req *registerRequest) password() string {
	if req.PasswordHash != "" {
		return req.PasswordHash
	}
	return req.Password
}

// Register creates an account and returns a token. The role field, if the
// client sent one, is ignored: every registration yields a User account.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if req.password() == "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["password"] = "The password field is required."
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.Register(req.Name, req.Email, req.password())
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.ValidationError(w, map[string]string{"email": "The email is already registered."})
			return
		}
		logger.WithCtx(r.Context()).Error("register failed", "error", err)
		response.Internal(w)
		return
	}

	response.OK(w, map[string]string{"token": token})
}

// Login authenticates with email and password passed as query parameters,
// the way the storefront has always sent them.
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	password := r.URL.Query().Get("password")

	token, err := c.auth.Login(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w)
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Internal(w)
		return
	}

	response.OK(w, map[string]string{"token": token})
}

// Index lists every user with orders, items and products nested. Password
// hashes and tokens are excluded by the model's serialisation.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list users failed", "error", err)
		response.Internal(w)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	response.OK(w, users)
}

// Delete removes a user and everything they own.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.users.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("delete user failed", "id", id, "error", err)
		response.Internal(w)
		return
	}

	response.NoContent(w)
}

package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/config"
	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/repository"
	"github.com/baherjr/OODB-Project/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and customer
// profile endpoints.
type AuthHandler struct {
	Cfg       config.Config
	Customers *repository.CustomerRepo
}

func NewAuthHandler(cfg config.Config, customers *repository.CustomerRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: customers}
}

// ----- DTOs -----

type registerReq struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	CustomerID string `json:"customer_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}

// Register creates a customer account. The C-prefixed identifier is assigned
// by the repository; a taken email is a 400.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, first_name, last_name, email and password are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cust := &model.Customer{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.Customers.Create(ctx, cust, req.Password, h.Cfg.BcryptCost); err != nil {
		return fail(c, err, "User not found")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful",
		"user":    userPart{CustomerID: cust.CustomerID, Username: cust.Username, Email: cust.Email},
	})
}

// Login verifies credentials and returns a signed token. The administrative
// account is configuration-injected and checked in constant time before any
// customer lookup; all credential failures share one message.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ttl := time.Duration(h.Cfg.TokenTTLMin) * time.Minute

	if h.matchesAdmin(req.Email, req.Password) {
		token, err := utils.NewAdminToken(h.Cfg.JWTSecret, req.Email, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome Admin", "token": token})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cust, err := h.Customers.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if !utils.VerifyPassword(cust.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid email or password"})
	}

	token, err := utils.NewCustomerToken(h.Cfg.JWTSecret, cust.CustomerID, cust.Email, ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful", "token": token})
}

// matchesAdmin compares the submitted credentials against the injected
// administrative account using constant-time equality.
func (h *AuthHandler) matchesAdmin(email, password string) bool {
	e := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(h.Cfg.AdminEmail)))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(h.Cfg.AdminPassword))
	return e&p == 1
}

// GetUser returns a customer's profile. A customer may only read their own
// record; an admin may read any.
func (h *AuthHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	if !h.mayAccess(c, id) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cust, err := h.Customers.GetByID(ctx, id)
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, cust)
}

// EditUser overwrites a customer's profile. Password is optional: when
// absent the stored hash is retained. Same self-or-admin gate as GetUser.
func (h *AuthHandler) EditUser(c echo.Context) error {
	id := c.Param("id")
	if !h.mayAccess(c, id) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, first_name, last_name and email are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cust := &model.Customer{
		CustomerID: id,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := h.Customers.Update(ctx, cust, req.Password, h.Cfg.BcryptCost); err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully", "user": cust})
}

// mayAccess reports whether the caller may touch the customer record id:
// admins always, customers only for themselves.
func (h *AuthHandler) mayAccess(c echo.Context, id string) bool {
	cl := currentClaims(c)
	if cl == nil {
		return false
	}
	return cl.IsAdmin() || cl.CustomerID == id
}

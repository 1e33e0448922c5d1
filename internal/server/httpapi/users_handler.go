package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/lockboxapp/lockbox/internal/common"
	"github.com/lockboxapp/lockbox/internal/server/auth"
	"github.com/lockboxapp/lockbox/internal/server/users"
)

const msgEmailPasswordRequired = "Email and password required"

type authUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	DOB   string `json:"dob"`
}

// authenticateUser is the combined login-or-register endpoint. Whether
// an account exists decides which one happens; profile fields in the
// body only matter for registration.
func (s *Server) authenticateUser(c *gin.Context) {
	var req authUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailPasswordRequired})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, created, err := s.users.Authenticate(c.Request.Context(), users.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		DOB:      req.DOB,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailPasswordRequired})
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	token, err := auth.GenerateToken(user.ID, []byte(s.config.SecretKey), s.config.TokenValidityDuration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user, "token": token})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User logged in", "user": user, "token": token})
}

// getUsers returns one sanitized user when an id query parameter is
// present, or every user otherwise.
func (s *Server) getUsers(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		user, err := s.users.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}

	list, err := s.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}

func (s *Server) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	user, err := s.users.Update(c.Request.Context(), req.ID, users.UpdateRequest{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		DOB:   req.DOB,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
}

func (s *Server) deleteUser(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

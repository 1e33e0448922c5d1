package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lockboxapp/lockbox/internal/common"
	"github.com/lockboxapp/lockbox/internal/server/passwords"
)

type passwordRequest struct {
	Title    string `json:"title"`
	Username string `json:"user"`
	Password string `json:"password"`
	Type     string `json:"type"`
	Icon     string `json:"icon"`
}

func (r passwordRequest) toEntry() *passwords.Entry {
	return &passwords.Entry{
		Title:    r.Title,
		Username: r.Username,
		Password: r.Password,
		Type:     r.Type,
		Icon:     r.Icon,
	}
}

func (s *Server) listPasswords(c *gin.Context) {
	userID := c.GetString(CtxUserIDKey)

	list, err := s.passwords.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"passwords": list})
}

func (s *Server) createPassword(c *gin.Context) {
	userID := c.GetString(CtxUserIDKey)

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := s.passwords.Create(c.Request.Context(), userID, req.toEntry())
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title, user and password required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"password": entry})
}

func (s *Server) updatePassword(c *gin.Context) {
	userID := c.GetString(CtxUserIDKey)
	id := c.Param("id")

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := s.passwords.Update(c.Request.Context(), userID, id, req.toEntry())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password id required"})
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Password not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"password": entry})
}

func (s *Server) deletePassword(c *gin.Context) {
	userID := c.GetString(CtxUserIDKey)
	id := c.Param("id")

	if err := s.passwords.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Password not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password deleted"})
}

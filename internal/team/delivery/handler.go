package delivery

import (
	"errors"
	"net/http"

	"genesis-backend/internal/team/domain"
	"genesis-backend/internal/team/usecase"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles team member HTTP requests
type TeamHandler struct {
	teamUsecase usecase.TeamUsecase
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamUsecase usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{
		teamUsecase: teamUsecase,
	}
}

// List returns all team members
// GET /api/team
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// Create inserts a new team member
// POST /api/team
func (h *TeamHandler) Create(c *gin.Context) {
	var member domain.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.teamUsecase.Create(&member)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update applies a partial patch to a team member
// PUT /api/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	var updates usecase.MemberUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamUsecase.Update(c.Param("id"), updates)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// Delete removes a team member
// DELETE /api/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamUsecase.Delete(c.Param("id")); err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNameRequired), errors.Is(err, usecase.ErrEmailRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

package delivery

import (
	"errors"
	"net/http"

	"genesis-backend/internal/board/usecase"
	leaduc "genesis-backend/internal/lead/usecase"

	"github.com/gin-gonic/gin"
)

// BoardHandler handles kanban board HTTP requests
type BoardHandler struct {
	boardUsecase usecase.BoardUsecase
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardUsecase usecase.BoardUsecase) *BoardHandler {
	return &BoardHandler{
		boardUsecase: boardUsecase,
	}
}

// MoveLeadRequest represents a completed drag gesture. Target may be a
// stage id or the id of the card the pointer was released over.
type MoveLeadRequest struct {
	LeadID string `json:"lead_id" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// Get returns the board columns for the current filter
// GET /api/board?search=&payment_status=
func (h *BoardHandler) Get(c *gin.Context) {
	filter := usecase.Filter{
		Search:        c.Query("search"),
		PaymentStatus: c.Query("payment_status"),
	}

	columns, err := h.boardUsecase.Get(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

// Move applies a drop gesture
// POST /api/board/move
func (h *BoardHandler) Move(c *gin.Context) {
	var req MoveLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.boardUsecase.Move(req.LeadID, req.Target)
	if err != nil {
		if errors.Is(err, leaduc.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

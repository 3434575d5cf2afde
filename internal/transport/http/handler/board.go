package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boardhub/internal/app"
	"boardhub/internal/transport/http/middleware"
	"boardhub/internal/transport/http/response"
)

type BoardHandler struct {
	boardService *app.BoardService
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=128"`
	// Defaults to public when omitted.
	IsPublic *bool `json:"is_public"`
}

type UpdateBoardRequest struct {
	BoardID  uint   `json:"board_id" binding:"required"`
	Name     string `json:"name" binding:"required,min=1,max=128"`
	IsPublic *bool  `json:"is_public" binding:"required"`
}

func NewBoardHandler(boardService *app.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	board, err := h.boardService.Create(c.Request.Context(), req.Name, isPublic, callerID)
	if err != nil {
		h.writeError(c, err, "create board failed")
		return
	}
	response.OK(c, board)
}

func (h *BoardHandler) Update(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	board, err := h.boardService.Update(c.Request.Context(), req.BoardID, req.Name, *req.IsPublic, callerID)
	if err != nil {
		h.writeError(c, err, "update board failed")
		return
	}
	response.OK(c, board)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	boardID, err := parseIDParam(c, "board_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid board id")
		return
	}

	if err := h.boardService.Delete(c.Request.Context(), boardID, callerID); err != nil {
		h.writeError(c, err, "delete board failed")
		return
	}
	response.OK(c, gin.H{"detail": "board deleted"})
}

func (h *BoardHandler) Get(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	boardID, err := parseIDParam(c, "board_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid board id")
		return
	}

	board, err := h.boardService.Get(boardID, callerID)
	if err != nil {
		h.writeError(c, err, "get board failed")
		return
	}
	response.OK(c, board)
}

func (h *BoardHandler) List(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	page := parseQueryInt(c, "page", 1)
	size := parseQueryInt(c, "size", 10)

	boards, err := h.boardService.ListAccessible(callerID, page, size)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list boards failed")
		return
	}
	response.OK(c, boards)
}

func (h *BoardHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrBoardExists):
		response.Error(c, http.StatusBadRequest, response.CodeBoardExists, err.Error())
	case errors.Is(err, app.ErrBoardNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, app.ErrBoardForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}

func parseQueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

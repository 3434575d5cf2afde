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

type PostHandler struct {
	postService *app.PostService
}

type CreatePostRequest struct {
	BoardID uint   `json:"board_id" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	PostID  uint   `json:"post_id" binding:"required"`
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), req.BoardID, req.Title, req.Content, callerID)
	if err != nil {
		h.writeError(c, err, "create post failed")
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Update(c.Request.Context(), req.PostID, req.Title, req.Content, callerID)
	if err != nil {
		h.writeError(c, err, "update post failed")
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	if err := h.postService.Delete(c.Request.Context(), postID, callerID); err != nil {
		h.writeError(c, err, "delete post failed")
		return
	}
	response.OK(c, gin.H{"detail": "post deleted"})
}

func (h *PostHandler) Get(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.Get(postID, callerID)
	if err != nil {
		h.writeError(c, err, "get post failed")
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) List(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	boardID, err := parseQueryID(c, "board_id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid board id")
		return
	}

	page := parseQueryInt(c, "page", 1)
	size := parseQueryInt(c, "size", 10)

	posts, err := h.postService.ListAccessible(boardID, callerID, page, size)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list posts failed")
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrPostNotFound), errors.Is(err, app.ErrBoardNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, app.ErrPostForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}

func parseQueryID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}

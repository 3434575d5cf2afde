package app

import (
	"context"
	"errors"
	"strings"

	"boardhub/internal/model"
	"boardhub/internal/repository"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrPostForbidden = errors.New("not allowed to access this post")
)

type PostService struct {
	posts    *repository.PostRepository
	boards   *repository.BoardRepository
	activity ActivityPublisher
}

func NewPostService(posts *repository.PostRepository, boards *repository.BoardRepository, activity ActivityPublisher) *PostService {
	return &PostService{posts: posts, boards: boards, activity: activity}
}

// Create inserts a post into the given board. The board must exist, but no
// visibility check is made against it: a caller may post into a private
// board it cannot read. CreatedAt is server-assigned.
func (s *PostService) Create(ctx context.Context, boardID uint, title, content string, callerID uint) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	board, err := s.boards.GetByID(boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		BoardID:  boardID,
		AuthorID: callerID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.activity, callerID, model.ActionCreate, model.EntityPost, post.ID)
	return post, nil
}

// Update replaces title and content wholesale; author only. The board and
// author references never change.
func (s *PostService) Update(ctx context.Context, postID uint, title, content string, callerID uint) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != callerID {
		return nil, ErrPostForbidden
	}

	post.Title = title
	post.Content = content
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.activity, callerID, model.ActionUpdate, model.EntityPost, post.ID)
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, postID, callerID uint) error {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != callerID {
		return ErrPostForbidden
	}

	if err := s.posts.MarkDeleted(postID); err != nil {
		return err
	}

	publishActivity(ctx, s.activity, callerID, model.ActionDelete, model.EntityPost, postID)
	return nil
}

// Get is author-only, even for posts in public boards. Posts of public
// boards are still exposed to other callers through ListAccessible; the
// asymmetry is intentional and mirrors the write-side ownership rule.
func (s *PostService) Get(postID, callerID uint) (*model.Post, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != callerID {
		return nil, ErrPostForbidden
	}
	return post, nil
}

func (s *PostService) ListAccessible(boardID, callerID uint, page, size int) ([]model.Post, error) {
	offset, limit := paginate(page, size)
	return s.posts.ListAccessible(boardID, callerID, offset, limit)
}

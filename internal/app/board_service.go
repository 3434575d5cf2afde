package app

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"boardhub/internal/model"
	"boardhub/internal/repository"
)

var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrBoardForbidden = errors.New("not allowed to access this board")
	ErrBoardExists    = errors.New("board already exists")
)

type BoardService struct {
	boards   *repository.BoardRepository
	activity ActivityPublisher
}

func NewBoardService(boards *repository.BoardRepository, activity ActivityPublisher) *BoardService {
	return &BoardService{boards: boards, activity: activity}
}

func (s *BoardService) Create(ctx context.Context, name string, isPublic bool, callerID uint) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	// Pre-check is an optimization; the unique index on name decides races.
	existing, err := s.boards.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBoardExists
	}

	board := &model.Board{
		Name:      name,
		IsPublic:  isPublic,
		CreatorID: callerID,
	}
	if err := s.boards.Create(board); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBoardExists
		}
		return nil, err
	}

	publishActivity(ctx, s.activity, callerID, model.ActionCreate, model.EntityBoard, board.ID)
	return board, nil
}

// Update replaces name and public flag wholesale; both are required inputs.
// Only the creator may update, and the creator reference never changes.
func (s *BoardService) Update(ctx context.Context, boardID uint, name string, isPublic bool, callerID uint) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	board, err := s.boards.GetByID(boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	if board.CreatorID != callerID {
		return nil, ErrBoardForbidden
	}

	board.Name = name
	board.IsPublic = isPublic
	if err := s.boards.Update(board); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBoardExists
		}
		return nil, err
	}

	publishActivity(ctx, s.activity, callerID, model.ActionUpdate, model.EntityBoard, board.ID)
	return board, nil
}

// Delete flips the soft-delete flag. The row stays readable by id and the
// board's posts are not cascaded.
func (s *BoardService) Delete(ctx context.Context, boardID, callerID uint) error {
	board, err := s.boards.GetByID(boardID)
	if err != nil {
		return err
	}
	if board == nil {
		return ErrBoardNotFound
	}
	if board.CreatorID != callerID {
		return ErrBoardForbidden
	}

	if err := s.boards.MarkDeleted(boardID); err != nil {
		return err
	}

	publishActivity(ctx, s.activity, callerID, model.ActionDelete, model.EntityBoard, boardID)
	return nil
}

// Get returns the board when it is public or owned by the caller. Public
// boards are readable by any authenticated caller, not anonymously.
func (s *BoardService) Get(boardID, callerID uint) (*model.Board, error) {
	board, err := s.boards.GetByID(boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	if board.CreatorID != callerID && !board.IsPublic {
		return nil, ErrBoardForbidden
	}
	return board, nil
}

func (s *BoardService) ListAccessible(callerID uint, page, size int) ([]model.Board, error) {
	offset, limit := paginate(page, size)
	return s.boards.ListAccessible(callerID, offset, limit)
}

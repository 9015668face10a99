package service

import (
	"context"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
	"github.com/hyeonbin/boardhub/internal/repo"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

type BoardService struct {
	Repo   *repo.GormRepo
	Search *SearchService
}

func (s *BoardService) Create(ctx context.Context, principal *models.User, title, contents string) (*models.Board, error) {
	board := models.Board{
		Author:   principal.Username,
		Title:    title,
		Contents: contents,
		Status:   domain.StatusPublic,
		UserID:   principal.ID,
	}
	if err := s.Repo.CreateBoard(ctx, &board); err != nil {
		return nil, err
	}
	s.Search.IndexBoard(ctx, &board)
	return &board, nil
}

func (s *BoardService) List(ctx context.Context) ([]models.Board, error) {
	return s.Repo.GetBoards(ctx)
}

func (s *BoardService) ListMine(ctx context.Context, principal *models.User) ([]models.Board, error) {
	return s.Repo.GetBoardsByUser(ctx, principal.ID)
}

func (s *BoardService) Get(ctx context.Context, id uint) (*models.Board, error) {
	return s.Repo.GetBoard(ctx, id)
}

func (s *BoardService) ByAuthor(ctx context.Context, author string) ([]models.Board, error) {
	return s.Repo.GetBoardsByAuthor(ctx, author)
}

// Update rewrites title and contents. Only the owner may edit; admins get no
// bypass here.
func (s *BoardService) Update(ctx context.Context, principal *models.User, id uint, title, contents string) (*models.Board, error) {
	board, err := s.Repo.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	if board.UserID != principal.ID {
		logging.FromContext(ctx).Warn("board_update_denied", "board_id", id, "user_id", principal.ID)
		return nil, domain.ErrForbidden
	}

	board.Title = title
	board.Contents = contents
	if err := s.Repo.SaveBoard(ctx, board); err != nil {
		return nil, err
	}
	s.Search.IndexBoard(ctx, board)
	return board, nil
}

func (s *BoardService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrValidation
	}
	return s.Repo.UpdateBoardStatus(ctx, id, status)
}

// Delete removes the board. The owner may always delete; an admin may delete
// anyone's board.
func (s *BoardService) Delete(ctx context.Context, principal *models.User, id uint) error {
	board, err := s.Repo.GetBoard(ctx, id)
	if err != nil {
		return err
	}
	if board.UserID != principal.ID && principal.Role != domain.RoleAdmin {
		logging.FromContext(ctx).Warn("board_delete_denied", "board_id", id, "user_id", principal.ID)
		return domain.ErrForbidden
	}
	return s.Repo.DeleteBoard(ctx, id)
}

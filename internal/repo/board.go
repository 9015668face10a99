package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
)

func (r *GormRepo) CreateBoard(ctx context.Context, b *models.Board) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *GormRepo) GetBoard(ctx context.Context, id uint) (*models.Board, error) {
	var board models.Board
	if err := r.DB.WithContext(ctx).First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *GormRepo) GetBoards(ctx context.Context) ([]models.Board, error) {
	var items []models.Board
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetBoardsByUser(ctx context.Context, userID uint) ([]models.Board, error) {
	var items []models.Board
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetBoardsByAuthor(ctx context.Context, author string) ([]models.Board, error) {
	var items []models.Board
	if err := r.DB.WithContext(ctx).
		Where("author = ?", author).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) SaveBoard(ctx context.Context, b *models.Board) error {
	return r.DB.WithContext(ctx).Save(b).Error
}

func (r *GormRepo) UpdateBoardStatus(ctx context.Context, id uint, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.Board{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormRepo) DeleteBoard(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Board{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

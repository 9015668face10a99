package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
)

func (r *GormRepo) CreateArticle(ctx context.Context, a *models.Article) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *GormRepo) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.DB.WithContext(ctx).First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *GormRepo) GetArticles(ctx context.Context) ([]models.Article, error) {
	var items []models.Article
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetArticlesByUser(ctx context.Context, userID uint) ([]models.Article, error) {
	var items []models.Article
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetArticlesByAuthor(ctx context.Context, author string) ([]models.Article, error) {
	var items []models.Article
	if err := r.DB.WithContext(ctx).
		Where("author = ?", author).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) SaveArticle(ctx context.Context, a *models.Article) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

func (r *GormRepo) UpdateArticleStatus(ctx context.Context, id uint, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.Article{}).
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

func (r *GormRepo) DeleteArticle(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

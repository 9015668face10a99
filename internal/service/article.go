package service

import (
	"context"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
	"github.com/hyeonbin/boardhub/internal/repo"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

type ArticleService struct {
	Repo   *repo.GormRepo
	Search *SearchService
}

func (s *ArticleService) Create(ctx context.Context, principal *models.User, title, contents string) (*models.Article, error) {
	article := models.Article{
		Author:   principal.Username,
		Title:    title,
		Contents: contents,
		Status:   domain.StatusPublic,
		UserID:   principal.ID,
	}
	if err := s.Repo.CreateArticle(ctx, &article); err != nil {
		return nil, err
	}
	s.Search.IndexArticle(ctx, &article)
	return &article, nil
}

func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	return s.Repo.GetArticles(ctx)
}

func (s *ArticleService) ListMine(ctx context.Context, principal *models.User) ([]models.Article, error) {
	return s.Repo.GetArticlesByUser(ctx, principal.ID)
}

func (s *ArticleService) Get(ctx context.Context, id uint) (*models.Article, error) {
	return s.Repo.GetArticle(ctx, id)
}

func (s *ArticleService) ByAuthor(ctx context.Context, author string) ([]models.Article, error) {
	return s.Repo.GetArticlesByAuthor(ctx, author)
}

func (s *ArticleService) Update(ctx context.Context, principal *models.User, id uint, title, contents string) (*models.Article, error) {
	article, err := s.Repo.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.UserID != principal.ID {
		logging.FromContext(ctx).Warn("article_update_denied", "article_id", id, "user_id", principal.ID)
		return nil, domain.ErrForbidden
	}

	article.Title = title
	article.Contents = contents
	if err := s.Repo.SaveArticle(ctx, article); err != nil {
		return nil, err
	}
	s.Search.IndexArticle(ctx, article)
	return article, nil
}

func (s *ArticleService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrValidation
	}
	return s.Repo.UpdateArticleStatus(ctx, id, status)
}

func (s *ArticleService) Delete(ctx context.Context, principal *models.User, id uint) error {
	article, err := s.Repo.GetArticle(ctx, id)
	if err != nil {
		return err
	}
	if article.UserID != principal.ID && principal.Role != domain.RoleAdmin {
		logging.FromContext(ctx).Warn("article_delete_denied", "article_id", id, "user_id", principal.ID)
		return domain.ErrForbidden
	}
	return s.Repo.DeleteArticle(ctx, id)
}

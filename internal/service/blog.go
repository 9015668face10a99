package service

import (
	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
)

// BlogRepository is the blog storage contract. Today it is backed by the
// in-memory store; a relational implementation can slot in without touching
// this service.
type BlogRepository interface {
	List() []models.BlogPost
	Get(id uint) (*models.BlogPost, error)
	ByAuthor(author string) []models.BlogPost
	Create(p *models.BlogPost)
	Update(id uint, title, contents string) (*models.BlogPost, error)
	UpdateStatus(id uint, status string) (*models.BlogPost, error)
	Delete(id uint) error
}

type BlogService struct {
	Repo BlogRepository
}

func (s *BlogService) List() []models.BlogPost {
	return s.Repo.List()
}

func (s *BlogService) Get(id uint) (*models.BlogPost, error) {
	return s.Repo.Get(id)
}

func (s *BlogService) ByAuthor(author string) []models.BlogPost {
	return s.Repo.ByAuthor(author)
}

func (s *BlogService) Create(author, title, contents string) (*models.BlogPost, error) {
	if author == "" || title == "" || contents == "" {
		return nil, domain.ErrValidation
	}
	post := models.BlogPost{
		Author:   author,
		Title:    title,
		Contents: contents,
		Status:   domain.StatusPublic,
	}
	s.Repo.Create(&post)
	return &post, nil
}

func (s *BlogService) Update(id uint, title, contents string) (*models.BlogPost, error) {
	if title == "" || contents == "" {
		return nil, domain.ErrValidation
	}
	return s.Repo.Update(id, title, contents)
}

func (s *BlogService) UpdateStatus(id uint, status string) (*models.BlogPost, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrValidation
	}
	return s.Repo.UpdateStatus(id, status)
}

func (s *BlogService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

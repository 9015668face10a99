package repo

import (
	"sync"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
)

// BlogStore keeps blog posts in memory. The blog never moved to the database,
// so this is the whole persistence layer for it.
type BlogStore struct {
	mu    sync.Mutex
	seq   uint
	posts map[uint]models.BlogPost
}

func NewBlogStore() *BlogStore {
	return &BlogStore{posts: make(map[uint]models.BlogPost)}
}

func (s *BlogStore) List() []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.BlogPost, 0, len(s.posts))
	for id := uint(1); id <= s.seq; id++ {
		if p, ok := s.posts[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *BlogStore) Get(id uint) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *BlogStore) ByAuthor(author string) []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.BlogPost
	for id := uint(1); id <= s.seq; id++ {
		if p, ok := s.posts[id]; ok && p.Author == author {
			out = append(out, p)
		}
	}
	return out
}

func (s *BlogStore) Create(p *models.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p.ID = s.seq
	s.posts[p.ID] = *p
}

func (s *BlogStore) Update(id uint, title, contents string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Title = title
	p.Contents = contents
	s.posts[id] = p
	return &p, nil
}

func (s *BlogStore) UpdateStatus(id uint, status string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Status = status
	s.posts[id] = p
	return &p, nil
}

func (s *BlogStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/hyeonbin/boardhub/internal/models"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

// Document is the shape indexed into Elasticsearch for boards and articles.
type Document struct {
	Kind     string `json:"kind"`
	ID       uint   `json:"id"`
	Author   string `json:"author"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

// SearchService is optional: a nil receiver (or nil client) turns indexing
// into a no-op and Search into ErrSearchUnavailable, so the rest of the app
// runs fine without Elasticsearch.
type SearchService struct {
	ES    *elasticsearch.Client
	Index string
}

var ErrSearchUnavailable = errors.New("search backend is not configured")

func (s *SearchService) Enabled() bool {
	return s != nil && s.ES != nil
}

func (s *SearchService) IndexBoard(ctx context.Context, b *models.Board) {
	s.index(ctx, Document{Kind: "board", ID: b.ID, Author: b.Author, Title: b.Title, Contents: b.Contents})
}

func (s *SearchService) IndexArticle(ctx context.Context, a *models.Article) {
	s.index(ctx, Document{Kind: "article", ID: a.ID, Author: a.Author, Title: a.Title, Contents: a.Contents})
}

// index is best-effort: a write must not fail because the index is down.
func (s *SearchService) index(ctx context.Context, doc Document) {
	if !s.Enabled() {
		return
	}
	l := logging.FromContext(ctx).With("svc", "search.index")

	body, err := json.Marshal(doc)
	if err != nil {
		l.Warn("index_failed", "error", err)
		return
	}

	res, err := s.ES.Index(
		s.Index,
		bytes.NewReader(body),
		s.ES.Index.WithDocumentID(fmt.Sprintf("%s-%d", doc.Kind, doc.ID)),
		s.ES.Index.WithContext(ctx),
	)
	if err != nil {
		l.Warn("index_failed", "error", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		l.Warn("index_failed", "status", res.Status())
	}
}

func (s *SearchService) Search(ctx context.Context, query string, from, size int) (int64, []Document, error) {
	if !s.Enabled() {
		return 0, nil, ErrSearchUnavailable
	}

	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"title^2", "contents", "author"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, err
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search error: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source Document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	docs := make([]Document, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		docs[i] = hit.Source
	}
	return r.Hits.Total.Value, docs, nil
}

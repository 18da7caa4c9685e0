// Package service contains the data-access layer: each operation is a thin
// contract over the posts API transport plus cache bookkeeping. Navigation
// and notifications are the caller's job; nothing here touches the UI.
package service

import (
	"context"

	"postboard/internal/cache"
	"postboard/internal/client"
	"postboard/internal/models"
)

// PostAPI is the transport surface the service consumes. Implemented by
// client.Client; tests substitute a mock.
type PostAPI interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	Create(ctx context.Context, input models.CreatePostInput) (models.Post, error)
	Edit(ctx context.Context, id string, input models.EditPostInput) (models.Post, error)
	Like(ctx context.Context, id string) (models.Post, error)
	Delete(ctx context.Context, id string) error
}

var _ PostAPI = (*client.Client)(nil)

// PostService exposes the five post operations backed by the shared cache.
type PostService struct {
	api   PostAPI
	cache *cache.Cache
}

// NewPostService wires the transport adapter to the shared cache instance.
func NewPostService(api PostAPI, c *cache.Cache) *PostService {
	return &PostService{api: api, cache: c}
}

// List returns the full collection in upstream order. Reads inside the
// freshness window are served from memory without a network call.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	v, err := s.cache.GetOrFetch(ctx, cache.AllPostsKey, func(ctx context.Context) (any, error) {
		return s.api.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	posts, _ := v.([]models.Post)
	return posts, nil
}

// Get returns a single post, cached per identifier. An empty id makes the
// operation inert: no network call is issued.
func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	if id == "" {
		return models.Post{}, models.ErrMissingID
	}
	v, err := s.cache.GetOrFetch(ctx, cache.PostKey(id), func(ctx context.Context) (any, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return models.Post{}, err
	}
	post, _ := v.(models.Post)
	return post, nil
}

// Create submits a new post. On success the collection entry is invalidated
// before Create returns, so a caller that navigates to the listing afterwards
// sees a refetch rather than the stale collection. On failure the cache is
// untouched.
func (s *PostService) Create(ctx context.Context, input models.CreatePostInput) (models.Post, error) {
	post, err := s.api.Create(ctx, input)
	if err != nil {
		return models.Post{}, err
	}
	s.cache.Invalidate(cache.AllPostsKey)
	return post, nil
}

// Edit submits a partial update. Only the collection entry is invalidated;
// the per-post entry keeps serving until its own windows lapse.
func (s *PostService) Edit(ctx context.Context, id string, input models.EditPostInput) (models.Post, error) {
	if id == "" {
		return models.Post{}, models.ErrMissingID
	}
	post, err := s.api.Edit(ctx, id, input)
	if err != nil {
		return models.Post{}, err
	}
	s.cache.Invalidate(cache.AllPostsKey)
	return post, nil
}

// Like increments the post's like count upstream and invalidates the
// collection entry so the next listing reflects the new count.
func (s *PostService) Like(ctx context.Context, id string) (models.Post, error) {
	if id == "" {
		return models.Post{}, models.ErrMissingID
	}
	post, err := s.api.Like(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	s.cache.Invalidate(cache.AllPostsKey)
	return post, nil
}

// Delete removes the post and invalidates the collection entry; the caller
// stays on the listing, which refetches on its next read.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrMissingID
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.AllPostsKey)
	return nil
}

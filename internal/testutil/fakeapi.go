// Package testutil provides an in-process stand-in for the remote posts API.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"postboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// FakeAPI is an httptest-backed posts API implementing the upstream wire
// contract. Safe for concurrent use.
type FakeAPI struct {
	mu    sync.Mutex
	posts map[string]models.Post
	order []string

	// FailNext makes the next request answer 500, then resets.
	FailNext bool

	Server *httptest.Server
}

// NewFakeAPI starts a fake posts API. Callers must Close it.
func NewFakeAPI() *FakeAPI {
	f := &FakeAPI{posts: make(map[string]models.Post)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

// Close shuts down the underlying test server.
func (f *FakeAPI) Close() {
	f.Server.Close()
}

// URL returns the base URL clients should point at.
func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// Seed inserts a post directly into the store and returns it with its
// generated id.
func (f *FakeAPI) Seed(post models.Post) models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	f.posts[post.ID] = post
	f.order = append(f.order, post.ID)
	return post
}

// SeedRandom inserts n random posts.
func (f *FakeAPI) SeedRandom(n int) []models.Post {
	out := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.Seed(models.Post{
			Title:       gofakeit.Sentence(3),
			Body:        gofakeit.Paragraph(1, 2, 8, " "),
			CreatorName: gofakeit.Username(),
			Tags:        models.Tags{Many: []string{gofakeit.Word(), gofakeit.Word()}},
			LikeCount:   gofakeit.Number(0, 50),
		}))
	}
	return out
}

// Get returns the stored post and whether it exists.
func (f *FakeAPI) Get(id string) (models.Post, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	return p, ok
}

func (f *FakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	if f.FailNext {
		f.FailNext = false
		f.mu.Unlock()
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	f.mu.Unlock()

	switch {
	case r.URL.Path == "/posts" && r.Method == http.MethodGet:
		f.list(w)
	case r.URL.Path == "/posts" && r.Method == http.MethodPost:
		f.create(w, r)
	case strings.HasSuffix(r.URL.Path, "/like") && r.Method == http.MethodPatch:
		f.like(w, r)
	case strings.HasPrefix(r.URL.Path, "/posts/") && r.Method == http.MethodGet:
		f.get(w, r)
	case strings.HasPrefix(r.URL.Path, "/posts/") && r.Method == http.MethodPatch:
		f.edit(w, r)
	case strings.HasPrefix(r.URL.Path, "/posts/") && r.Method == http.MethodDelete:
		f.delete(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (f *FakeAPI) list(w http.ResponseWriter) {
	f.mu.Lock()
	out := make([]models.Post, 0, len(f.order))
	for _, id := range f.order {
		if p, ok := f.posts[id]; ok {
			out = append(out, p)
		}
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/posts/")
	f.mu.Lock()
	p, ok := f.posts[id]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) create(w http.ResponseWriter, r *http.Request) {
	var in models.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	post := models.Post{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Body:        in.Body,
		CreatorName: in.CreatorName,
		Tags:        in.Tags,
	}
	f.mu.Lock()
	f.posts[post.ID] = post
	f.order = append(f.order, post.ID)
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, post)
}

func (f *FakeAPI) edit(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/posts/")
	var in models.EditPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	p, ok := f.posts[id]
	if !ok {
		f.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Body != nil {
		p.Body = *in.Body
	}
	if in.CreatorName != nil {
		p.CreatorName = *in.CreatorName
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	f.posts[id] = p
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) like(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/posts/"), "/like")
	f.mu.Lock()
	p, ok := f.posts[id]
	if !ok {
		f.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	p.LikeCount++
	f.posts[id] = p
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) delete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/posts/")
	f.mu.Lock()
	_, ok := f.posts[id]
	delete(f.posts, id)
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

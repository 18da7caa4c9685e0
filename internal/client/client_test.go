package client_test

import (
	"context"
	"testing"
	"time"

	"postboard/internal/client"
	"postboard/internal/models"
	"postboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*client.Client, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI()
	t.Cleanup(api.Close)
	return client.New(api.URL(), 5*time.Second), api
}

func TestClientListAndGet(t *testing.T) {
	c, api := newClient(t)
	seeded := api.SeedRandom(3)

	posts, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, seeded[0].Title, posts[0].Title)

	got, err := c.Get(context.Background(), seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[1].ID, got.ID)
	assert.Equal(t, seeded[1].CreatorName, got.CreatorName)
}

func TestClientCreate(t *testing.T) {
	c, api := newClient(t)

	created, err := c.Create(context.Background(), models.CreatePostInput{
		Title:       "First Light",
		Body:        "A long enough description",
		CreatorName: "casey",
		Tags:        models.Tags{Many: []string{"go", "web"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.LikeCount)

	stored, ok := api.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "First Light", stored.Title)
	assert.Equal(t, []string{"go", "web"}, stored.Tags.List())
}

func TestClientEdit(t *testing.T) {
	c, api := newClient(t)
	post := api.Seed(models.Post{Title: "Before", Body: "body", CreatorName: "casey"})

	title := "After"
	got, err := c.Edit(context.Background(), post.ID, models.EditPostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "body", got.Body)
}

func TestClientLike(t *testing.T) {
	c, api := newClient(t)
	post := api.Seed(models.Post{Title: "Liked", LikeCount: 4})

	got, err := c.Like(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.LikeCount)
}

func TestClientDelete(t *testing.T) {
	c, api := newClient(t)
	post := api.Seed(models.Post{Title: "Doomed"})

	require.NoError(t, c.Delete(context.Background(), post.ID))

	_, ok := api.Get(post.ID)
	assert.False(t, ok)
}

func TestClientUpstreamError(t *testing.T) {
	c, api := newClient(t)
	api.FailNext = true

	_, err := c.List(context.Background())
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
}

func TestClientTransportError(t *testing.T) {
	c := client.New("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := c.List(context.Background())
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TRANSPORT_ERROR", appErr.Code)
}

func TestClientPing(t *testing.T) {
	c, _ := newClient(t)
	assert.NoError(t, c.Ping(context.Background()))
}

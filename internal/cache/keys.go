package cache

import "fmt"

const (
	// AllPostsKey caches the full collection returned by GET /posts.
	AllPostsKey = "posts:all"

	postKeyPrefix = "post:%s"
)

// PostKey returns the cache key for a single post, so fetching one post
// never serves stale data for another.
func PostKey(id string) string {
	return fmt.Sprintf(postKeyPrefix, id)
}

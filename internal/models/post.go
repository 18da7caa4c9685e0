package models

import (
	"encoding/json"
	"strings"
)

// Post is the single entity managed by the application. The remote posts API
// is the system of record; nothing here is persisted locally.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	CreatorName string `json:"creatorName"`
	Tags        Tags   `json:"tags"`
	LikeCount   int    `json:"likeCount"`
}

// CreatePostInput is a Post minus the server-assigned fields. The ID does not
// exist until the create response is received.
type CreatePostInput struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	CreatorName string `json:"creatorName"`
	Tags        Tags   `json:"tags"`
}

// EditPostInput is a partial update; nil fields are omitted from the request.
type EditPostInput struct {
	Title       *string `json:"title,omitempty"`
	Body        *string `json:"body,omitempty"`
	CreatorName *string `json:"creatorName,omitempty"`
	Tags        *Tags   `json:"tags,omitempty"`
}

// Tags carries the posts API's two wire representations of the tags field:
// a bare string for a single tag, a JSON array for several. Exactly one of
// the two variants is set.
type Tags struct {
	Single string
	Many   []string
}

// ParseTags normalizes a raw form value. A value containing a comma is split
// and each token trimmed into the Many variant; anything else passes through
// unchanged as Single.
func ParseTags(raw string) Tags {
	if !strings.Contains(raw, ",") {
		return Tags{Single: raw}
	}
	parts := strings.Split(raw, ",")
	many := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			many = append(many, t)
		}
	}
	return Tags{Many: many}
}

// IsMany reports whether the value holds the array variant.
func (t Tags) IsMany() bool {
	return t.Many != nil
}

// List returns the tags as an ordered slice regardless of variant.
func (t Tags) List() []string {
	if t.IsMany() {
		return t.Many
	}
	if t.Single == "" {
		return nil
	}
	return []string{t.Single}
}

// Editable returns the comma-joined form used to pre-populate the edit form.
func (t Tags) Editable() string {
	if t.IsMany() {
		return strings.Join(t.Many, ", ")
	}
	return t.Single
}

// MarshalJSON emits a bare string for the single variant and an array for the
// many variant, matching what the remote API stores.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t.IsMany() {
		return json.Marshal(t.Many)
	}
	return json.Marshal(t.Single)
}

// UnmarshalJSON accepts either wire shape.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Tags{Single: single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = Tags{Many: many}
	return nil
}

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() PostForm {
	return PostForm{
		Title:       "Hello World",
		Body:        "This is a sufficiently long body.",
		CreatorName: "Alice",
		Tags:        "#a, #b",
	}
}

func TestValidatePostForm_ValidInput(t *testing.T) {
	assert.Empty(t, ValidatePostForm(validForm()))
}

func TestValidatePostForm_TitleBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantMsg string
	}{
		{name: "length 2 rejected", title: "ab", wantMsg: "Title is too short"},
		{name: "length 3 accepted", title: "abc", wantMsg: ""},
		{name: "length 30 accepted", title: strings.Repeat("a", 30), wantMsg: ""},
		{name: "length 31 rejected", title: strings.Repeat("a", 31), wantMsg: "Title should not exceed 30 characters"},
		{name: "missing", title: "", wantMsg: "Title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Title = tt.title
			errs := ValidatePostForm(form)
			if tt.wantMsg == "" {
				assert.NotContains(t, errs, "title")
			} else {
				assert.Equal(t, tt.wantMsg, errs["title"])
			}
		})
	}
}

func TestValidatePostForm_BodyBoundaries(t *testing.T) {
	form := validForm()
	form.Body = strings.Repeat("b", 9)
	assert.Equal(t, "Description is too short", ValidatePostForm(form)["body"])

	form.Body = strings.Repeat("b", 201)
	assert.Equal(t, "Description should not exceed 200 characters", ValidatePostForm(form)["body"])

	form.Body = strings.Repeat("b", 200)
	assert.NotContains(t, ValidatePostForm(form), "body")
}

func TestValidatePostForm_CreatorNameBoundaries(t *testing.T) {
	form := validForm()
	form.CreatorName = "Bob"
	assert.Equal(t, "Name is too short", ValidatePostForm(form)["creatorName"])

	form.CreatorName = strings.Repeat("c", 16)
	assert.Equal(t, "Creator name should not exceed 15 characters", ValidatePostForm(form)["creatorName"])
}

func TestValidatePostForm_TagsRequired(t *testing.T) {
	form := validForm()
	form.Tags = ""
	assert.Equal(t, "At least one tag is required", ValidatePostForm(form)["tags"])
}

func TestValidatePostForm_CollectsAllFieldErrors(t *testing.T) {
	errs := ValidatePostForm(PostForm{})
	assert.Len(t, errs, 4)
}

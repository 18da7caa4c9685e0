package server

import (
	"errors"

	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PostListPage handles GET /
func (s *Server) PostListPage(c *fiber.Ctx) error {
	posts, err := s.posts.List(c.UserContext())
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to load posts", "error", err)
		return c.Render("posts", fiber.Map{
			"Error": "Failed to load posts.",
			"Flash": s.takeFlash(c),
		}, "layouts/main")
	}

	return c.Render("posts", fiber.Map{
		"Posts": posts,
		"Flash": s.takeFlash(c),
	}, "layouts/main")
}

// CreatePostPage handles GET /create-post
func (s *Server) CreatePostPage(c *fiber.Ctx) error {
	return c.Render("create", fiber.Map{
		"Form":   validation.PostForm{},
		"Errors": validation.FieldErrors{},
		"Flash":  s.takeFlash(c),
	}, "layouts/main")
}

// CreatePostSubmit handles POST /create-post
func (s *Server) CreatePostSubmit(c *fiber.Ctx) error {
	var form validation.PostForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validation failure blocks submission; the data-access layer is not called.
	if errs := validation.ValidatePostForm(form); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("create", fiber.Map{
			"Form":   form,
			"Errors": errs,
		}, "layouts/main")
	}

	input := models.CreatePostInput{
		Title:       form.Title,
		Body:        form.Body,
		CreatorName: form.CreatorName,
		Tags:        models.ParseTags(form.Tags),
	}

	if _, err := s.posts.Create(c.UserContext(), input); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "post creation failed", "error", err)
		return c.Status(fiber.StatusBadGateway).Render("create", fiber.Map{
			"Form":   form,
			"Errors": validation.FieldErrors{},
			"Notice": "Failed to create post",
		}, "layouts/main")
	}

	s.flash(c, "success", "Post created successfully")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// EditPostPage handles GET /edit-post/:id
func (s *Server) EditPostPage(c *fiber.Ctx) error {
	post, err := s.posts.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrMissingID) {
			s.flash(c, "error", "Id not found")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		middleware.Logger.ErrorContext(c.UserContext(), "failed to load post for editing",
			"id", c.Params("id"), "error", err)
		s.flash(c, "error", "Failed to show individual post")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	form := validation.PostForm{
		Title:       post.Title,
		Body:        post.Body,
		CreatorName: post.CreatorName,
		Tags:        post.Tags.Editable(),
	}

	return c.Render("edit", fiber.Map{
		"ID":     post.ID,
		"Form":   form,
		"Errors": validation.FieldErrors{},
		"Flash":  s.takeFlash(c),
	}, "layouts/main")
}

// EditPostSubmit handles POST /edit-post/:id
func (s *Server) EditPostSubmit(c *fiber.Ctx) error {
	id := c.Params("id")

	var form validation.PostForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ValidatePostForm(form); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("edit", fiber.Map{
			"ID":     id,
			"Form":   form,
			"Errors": errs,
		}, "layouts/main")
	}

	if _, err := s.posts.Edit(c.UserContext(), id, editInput(form)); err != nil {
		if errors.Is(err, models.ErrMissingID) {
			s.flash(c, "error", "Id not found")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		middleware.Logger.ErrorContext(c.UserContext(), "post update failed", "id", id, "error", err)
		return c.Status(fiber.StatusBadGateway).Render("edit", fiber.Map{
			"ID":     id,
			"Form":   form,
			"Errors": validation.FieldErrors{},
			"Notice": "Failed to update post",
		}, "layouts/main")
	}

	s.flash(c, "success", "Post updated successfully")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// LikePost handles POST /posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := s.posts.Like(c.UserContext(), id); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "post like failed", "id", id, "error", err)
		s.flash(c, "error", "Something went wrong....")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	s.flash(c, "success", "Post liked successfully")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// DeletePostPage handles GET /delete-post/:id. The explicit confirmation step
// guards the destructive action; cancelling navigates back without effect.
func (s *Server) DeletePostPage(c *fiber.Ctx) error {
	return c.Render("delete", fiber.Map{
		"ID":    c.Params("id"),
		"Flash": s.takeFlash(c),
	}, "layouts/main")
}

// DeletePostSubmit handles POST /delete-post/:id
func (s *Server) DeletePostSubmit(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.posts.Delete(c.UserContext(), id); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "post deletion failed", "id", id, "error", err)
		s.flash(c, "error", "Failed to delete post")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	s.flash(c, "success", "Post has been deleted")
	return c.Redirect("/", fiber.StatusSeeOther)
}

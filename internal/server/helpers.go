package server

import (
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	flashLevelKey   = "flash_level"
	flashMessageKey = "flash_message"
)

// Flash is a one-shot notification rendered by the page shell on the next
// response, then discarded.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

// flash stores a notification in the session for the next rendered page.
func (s *Server) flash(c *fiber.Ctx, level, message string) {
	sess, err := s.store.Get(c)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "session unavailable, dropping notification",
			"error", err, "message", message)
		return
	}
	sess.Set(flashLevelKey, level)
	sess.Set(flashMessageKey, message)
	if err := sess.Save(); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to save flash", "error", err)
	}
}

// takeFlash removes and returns the pending notification, if any.
func (s *Server) takeFlash(c *fiber.Ctx) *Flash {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil
	}
	message, _ := sess.Get(flashMessageKey).(string)
	if message == "" {
		return nil
	}
	level, _ := sess.Get(flashLevelKey).(string)
	sess.Delete(flashMessageKey)
	sess.Delete(flashLevelKey)
	if err := sess.Save(); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to clear flash", "error", err)
	}
	return &Flash{Level: level, Message: message}
}

// editInput converts a validated form into the partial-update payload. The
// form always carries every field, so every field is submitted.
func editInput(form validation.PostForm) models.EditPostInput {
	tags := models.ParseTags(form.Tags)
	return models.EditPostInput{
		Title:       &form.Title,
		Body:        &form.Body,
		CreatorName: &form.CreatorName,
		Tags:        &tags,
	}
}

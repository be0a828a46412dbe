package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

var errResumeNotFound = fiber.NewError(fiber.StatusNotFound, "Resume not found")

func resumeID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errResumeNotFound
	}
	return id, nil
}

// resumeErr reports a missing resume as 404 and anything else as a 500
// carrying message.
func resumeErr(message string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return errResumeNotFound
	}
	return fail(message, err)
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var content model.Resume
	if err := decode(c, model.ResumeSchema, &content); err != nil {
		return err
	}
	r, err := h.resumes.Create(c.UserContext(), currentUser(c).ID, content)
	if err != nil {
		return fail("Error creating resume", err)
	}
	return ok(c, fiber.StatusCreated, "Resume created successfully", fiber.Map{"resume": r})
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	list, err := h.resumes.List(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return fail("Error fetching resumes", err)
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"resumes": list, "count": len(list)})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return err
	}
	r, err := h.resumes.Get(c.UserContext(), currentUser(c).ID, id)
	if err != nil {
		return resumeErr("Error fetching resume", err)
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"resume": r})
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return err
	}
	var content model.Resume
	if err := decode(c, model.ResumeSchema, &content); err != nil {
		return err
	}
	r, err := h.resumes.Update(c.UserContext(), currentUser(c).ID, id, content)
	if err != nil {
		return resumeErr("Error updating resume", err)
	}
	return ok(c, fiber.StatusOK, "Resume updated successfully", fiber.Map{"resume": r})
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return err
	}
	if err := h.resumes.Delete(c.UserContext(), currentUser(c).ID, id); err != nil {
		return resumeErr("Error deleting resume", err)
	}
	return ok(c, fiber.StatusOK, "Resume deleted successfully", nil)
}

func (h *Handler) DuplicateResume(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return err
	}
	r, err := h.resumes.Duplicate(c.UserContext(), currentUser(c).ID, id)
	if err != nil {
		return resumeErr("Error duplicating resume", err)
	}
	return ok(c, fiber.StatusCreated, "Resume duplicated successfully", fiber.Map{"resume": r})
}

// DownloadResume streams the rendered PDF as an attachment.
func (h *Handler) DownloadResume(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return err
	}
	doc, err := h.resumes.Download(c.UserContext(), currentUser(c), id)
	if err != nil {
		return resumeErr("Error generating PDF", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment(doc.Filename))
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(doc.PDF)))
	return c.Send(doc.PDF)
}

func (h *Handler) ResumeStats(c *fiber.Ctx) error {
	stats, err := h.resumes.Stats(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return fail("Error fetching resume statistics", err)
	}
	return ok(c, fiber.StatusOK, "", stats)
}

// attachment builds a Content-Disposition value with an ASCII filename for
// old clients and an RFC 5987 filename* carrying the UTF-8 name.
func attachment(name string) string {
	fallback := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, name)
	return `attachment; filename="` + fallback + `"; filename*=UTF-8''` + extValue(name)
}

// extValue percent-encodes every byte outside the RFC 5987 attr-char set.
func extValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			strings.IndexByte("!#$&+-.^_`|~", c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

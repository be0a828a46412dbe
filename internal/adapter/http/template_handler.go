package http

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	list := h.templates.List(levelOf(c))
	return ok(c, fiber.StatusOK, "", fiber.Map{
		"templates":      list,
		"count":          len(list),
		"totalAvailable": h.templates.Len(),
	})
}

func (h *Handler) GetTemplate(c *fiber.Ctx) error {
	t, err := h.templates.Get(c.Params("id"), levelOf(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"template": t})
}

func (h *Handler) TemplatesByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	list, err := h.templates.ByCategory(category, levelOf(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"templates": list, "count": len(list), "category": category})
}

func (h *Handler) TemplateCategories(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "", fiber.Map{"categories": h.templates.Categories()})
}

func (h *Handler) SearchTemplates(c *fiber.Ctx) error {
	query := c.Params("query")
	list := h.templates.Search(query, levelOf(c))
	return ok(c, fiber.StatusOK, "", fiber.Map{"templates": list, "count": len(list), "searchQuery": query})
}

func (h *Handler) RecommendTemplates(c *fiber.Ctx) error {
	level := levelOf(c)
	if level == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please set your experience level to get recommendations")
	}
	list := h.templates.Recommend(level)
	return ok(c, fiber.StatusOK, "", fiber.Map{"templates": list, "count": len(list), "experienceLevel": level})
}

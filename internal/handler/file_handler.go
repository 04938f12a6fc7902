package handler

import (
	"github.com/gofiber/fiber/v2"

	"filebot/internal/repository"
	"filebot/internal/service/search"
)

type FileHandler struct {
	searchService search.Service
	fileRepo      repository.FileRepository
}

func NewFileHandler(searchService search.Service, fileRepo repository.FileRepository) *FileHandler {
	return &FileHandler{
		searchService: searchService,
		fileRepo:      fileRepo,
	}
}

func (h *FileHandler) Search(c *fiber.Ctx) error {
	result, err := h.searchService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *FileHandler) Stats(c *fiber.Ctx) error {
	total, err := h.fileRepo.Count(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"total_files": total})
}

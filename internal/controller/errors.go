package controller

import (
	"errors"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameExists),
		errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrAlreadyQueued),
		errors.Is(err, model.ErrAlreadyConnected):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrNotPlayer),
		errors.Is(err, model.ErrNotYourPiece):
		return fiber.StatusForbidden
	case errors.Is(err, chess.ErrInvalidMove),
		errors.Is(err, chess.ErrGameOver),
		errors.Is(err, model.ErrBadMove),
		errors.Is(err, model.ErrNotStarted),
		errors.Is(err, model.ErrFlagFell):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

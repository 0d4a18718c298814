package helper

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Semua error keluar sebagai {"message": "..."} — bentuk yang diparse frontend.

func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// JsonMessage untuk respons sukses yang hanya berisi pesan (mis. delete).
func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// FiberErrorHandler dipasang di fiber.Config supaya fiber.NewError dari
// service/controller juga keluar dengan envelope {"message"}.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}

// ParseIDParam membaca path param numerik; nilai non-numerik → 400.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Parameter "+name+" tidak valid")
	}
	return uint(id), nil
}

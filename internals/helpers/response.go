// file: internals/helpers/response.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   JSON responses (standard shape)
   {success, message?, data?, error?}
=================================*/

// JsonOK: response sukses generic (GET detail, list, update)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{"success": true}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{"success": true}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonErrorWithCause: error 500 dengan detail penyebab untuk diagnosa.
// Cause tidak boleh membocorkan kredensial; cukup pesan driver.
func JsonErrorWithCause(c *fiber.Ctx, status int, message string, cause error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if cause != nil {
		body["error"] = cause.Error()
	}
	return c.Status(status).JSON(body)
}

// JsonValidationError: khusus error validasi (validator.v10)
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validasi gagal",
		"error":   errorsMap,
	})
}

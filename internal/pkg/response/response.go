package response

import "github.com/gofiber/fiber/v3"

// Every body carries a boolean "success" flag; failures additionally carry
// a human-readable "message". Payload entries sit next to the flag under
// their own keys ("job", "jobs", ...).

const (
	MessageBadRequest          = "Bad request."
	MessageUnauthorized        = "Unauthorized."
	MessageNotFound            = "Not found."
	MessageInternalServerError = "Internal server error."
)

func Success(c fiber.Ctx, status int, message string, payload map[string]any) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(normalizeStatus(status)).JSON(body)
}

func Error(c fiber.Ctx, status int, message string) error {
	status = normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(status)
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		return MessageInternalServerError
	}
}

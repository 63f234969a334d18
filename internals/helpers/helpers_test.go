package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sampleReq struct {
	Name   string `json:"name" validate:"notblank"`
	Email  string `json:"email" validate:"required,hrms_email"`
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(sampleReq{Name: "Ana", Email: "a@b.co", Status: "Present"})
	assert.NoError(t, err)

	err = ValidateStruct(sampleReq{Name: "   ", Email: "not-an-email", Status: "Late"})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Field cannot be empty"}, ve.Fields["name"])
	assert.Equal(t, []string{"Invalid email format"}, ve.Fields["email"])
	assert.Equal(t, []string{"must be one of: Present Absent"}, ve.Fields["status"])
	assert.Contains(t, ve.Error(), "email: Invalid email format")
}

func TestEmailPattern(t *testing.T) {
	good := []string{"a@b.co", "first.last@corp.example.com", "x_y-z@d-1.io"}
	bad := []string{"", "a@b", "a@b.c", "@b.co", "a b@c.co", "a@b.co "}
	for _, s := range good {
		assert.True(t, emailPattern.MatchString(s), s)
	}
	for _, s := range bad {
		assert.False(t, emailPattern.MatchString(s), s)
	}
}

func decodeError(t *testing.T, body io.Reader) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandlerShapes(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "Email 'a@b.co' is already registered")
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return NewValidationError("", map[string][]string{"email": {"Invalid email format"}})
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeError(t, resp.Body)
	assert.False(t, body.Success)
	assert.Equal(t, "CONFLICT", body.ErrorCode)
	assert.Equal(t, "Email 'a@b.co' is already registered", body.Detail)
	assert.Equal(t, body.Message, body.Detail)

	resp, err = app.Test(httptest.NewRequest("GET", "/invalid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body = decodeError(t, resp.Body)
	assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode)
	assert.Equal(t, "validation failed", body.Message)
	assert.Equal(t, []string{"Invalid email format"}, body.Errors["email"])

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body = decodeError(t, resp.Body)
	assert.Equal(t, "INTERNAL_ERROR", body.ErrorCode)
	assert.NotContains(t, body.Message, "pq:")

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp.Body).ErrorCode)
}

func TestJsonNoContent(t *testing.T) {
	app := fiber.New()
	app.Delete("/x", JsonNoContent)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, fiber.StatusUnprocessableEntity, StatusOf(NewValidationError("x", nil)))
	assert.Equal(t, fiber.StatusNotFound, StatusOf(fiber.NewError(fiber.StatusNotFound, "gone")))
	assert.Equal(t, fiber.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: employees.email")))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)`)))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}

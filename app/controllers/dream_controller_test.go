package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHandleDreamIndex_Unconfigured(t *testing.T) {
	app := newTestApp(&stubGateway{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dreams", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "The interpretation API key is not configured")
}

func TestHandleDreamInterpret_UnconfiguredShowsError(t *testing.T) {
	app := newTestApp(&stubGateway{})

	resp, err := postForm(app, "/dreams/interpret", url.Values{"dream": {"I was flying."}})
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "The interpretation API key is not configured.")
}

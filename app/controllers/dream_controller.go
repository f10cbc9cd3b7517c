package controllers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleDreamIndex renders the dream interpretation demo. Without an API key
// the page carries a configuration notice and the submit control is disabled.
func HandleDreamIndex(c *fiber.Ctx) error {
	return render(c, "dreams", fiber.Map{
		"Title":      "AI Dream Interpretation",
		"Configured": dreamClient.IsConfigured(),
	})
}

// HandleDreamInterpret sends the submitted dream text to the completion
// endpoint and renders the interpretation paragraph by paragraph.
func HandleDreamInterpret(c *fiber.Ctx) error {
	dreamText := strings.TrimSpace(c.FormValue("dream"))

	if !dreamClient.IsConfigured() {
		return renderDreamResult(c, dreamText, nil, "The interpretation API key is not configured.")
	}
	if dreamText == "" {
		return renderDreamResult(c, dreamText, nil, "Please describe your dream first.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	paragraphs, err := dreamClient.Interpret(ctx, dreamText)
	if err != nil {
		log.Printf("dream interpretation failed: %v", err)
		return renderDreamResult(c, dreamText, nil, "Sorry, something went wrong during interpretation. Please try again later or check the API key configuration.")
	}

	return renderDreamResult(c, dreamText, paragraphs, "")
}

func renderDreamResult(c *fiber.Ctx, dreamText string, paragraphs []string, errMsg string) error {
	return render(c, "dreams", fiber.Map{
		"Title":          "AI Dream Interpretation",
		"Configured":     dreamClient.IsConfigured(),
		"Dream":          dreamText,
		"Interpretation": paragraphs,
		"Error":          errMsg,
	})
}

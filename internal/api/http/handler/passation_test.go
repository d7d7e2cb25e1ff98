package handler

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/service/passation"
)

func TestMapPassationErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", passation.ErrPassationNotFound, fiber.StatusNotFound},
		{"state conflict", passation.ErrNotSuspendable, fiber.StatusConflict},
		{"invalid answer", ide.ErrInvalidAnswer, fiber.StatusBadRequest},
		// Scoring an empty answer sheet is a caller error, not a state
		// conflict.
		{"no answers", ide.ErrNoAnswers, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return mapPassationError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestTranslateAnswer(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"yes", "yes", false},
		{"no", "no", false},
		{"oui", "yes", false},
		{"non", "no", false},
		// Legacy numeric encoding: only 1 marks an acquired item.
		{"1", "yes", false},
		{"0", "no", false},
		{"2", "no", false},
		{"", "", true},
		{"OUI", "", true}, // values are case-sensitive
		{"3", "", true},
		{"maybe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := translateAnswer(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ide.ErrInvalidAnswer) {
					t.Errorf("translateAnswer(%q) error = %v, want ErrInvalidAnswer", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("translateAnswer(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("translateAnswer(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

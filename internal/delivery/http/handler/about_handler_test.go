package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validate"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// stubAboutUsecase serves canned results so the tests exercise only
// routing, binding and the response envelope.
type stubAboutUsecase struct {
	profile portfolio.AboutProfile
	active  bool
	err     error
}

func (s *stubAboutUsecase) List(context.Context) ([]portfolio.AboutProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []portfolio.AboutProfile{s.profile}, nil
}

func (s *stubAboutUsecase) Get(context.Context, uuid.UUID) (portfolio.AboutProfile, error) {
	return s.profile, s.err
}

func (s *stubAboutUsecase) Active(context.Context) (portfolio.AboutProfile, bool, error) {
	return s.profile, s.active, s.err
}

func (s *stubAboutUsecase) Create(context.Context, usecase.AboutInput) (portfolio.AboutProfile, error) {
	return s.profile, s.err
}

func (s *stubAboutUsecase) Update(context.Context, uuid.UUID, usecase.AboutInput) (portfolio.AboutProfile, error) {
	return s.profile, s.err
}

func (s *stubAboutUsecase) Patch(context.Context, uuid.UUID, usecase.AboutPatch) (portfolio.AboutProfile, error) {
	return s.profile, s.err
}

func (s *stubAboutUsecase) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func newAboutTestApp(uc usecase.AboutUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewAboutHandler(uc).RegisterRoutes(app, app)
	return app
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var env envelope
	if resp.StatusCode != fiber.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
	}
	return resp, env
}

func TestAboutCreate_Returns201(t *testing.T) {
	app := newAboutTestApp(&stubAboutUsecase{profile: portfolio.AboutProfile{ID: uuid.New(), Name: "Jane"}})

	resp, env := doJSON(t, app, http.MethodPost, "/about/", map[string]any{
		"name":  "Jane",
		"title": "Engineer",
		"bio":   "bio",
		"email": "jane@example.com",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if env.Status != fiber.StatusCreated || env.Message == "" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestAboutValidation_Returns400WithFieldMap(t *testing.T) {
	fe := validate.New()
	fe.Add("email", "enter a valid email address")
	app := newAboutTestApp(&stubAboutUsecase{err: fe})

	resp, env := doJSON(t, app, http.MethodPost, "/about/", map[string]any{"name": "Jane"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var data map[string][]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode field map: %v", err)
	}
	if len(data["email"]) == 0 {
		t.Fatalf("expected email messages, got %v", data)
	}
}

func TestAboutGet_MalformedIDIs404(t *testing.T) {
	app := newAboutTestApp(&stubAboutUsecase{})

	resp, env := doJSON(t, app, http.MethodGet, "/about/not-a-uuid", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if env.Status != fiber.StatusNotFound {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestAboutGet_NotFound(t *testing.T) {
	app := newAboutTestApp(&stubAboutUsecase{err: usecase.ErrNotFound})

	resp, _ := doJSON(t, app, http.MethodGet, "/about/"+uuid.NewString(), nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAboutActive_EmptyObjectWhenNoneActive(t *testing.T) {
	app := newAboutTestApp(&stubAboutUsecase{active: false})

	resp, env := doJSON(t, app, http.MethodGet, "/about/active", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if string(env.Data) != "{}" {
		t.Fatalf("expected empty object, got %s", env.Data)
	}
}

func TestAboutDelete_Returns204WithoutBody(t *testing.T) {
	app := newAboutTestApp(&stubAboutUsecase{})

	resp, _ := doJSON(t, app, http.MethodDelete, "/about/"+uuid.NewString(), nil)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %q", body)
	}
}

func TestAboutInternalError_HidesDetails(t *testing.T) {
	app := newAboutTestApp(&stubAboutUsecase{err: usecase.ErrInternal})

	resp, env := doJSON(t, app, http.MethodGet, "/about/", nil)
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if env.Message != "internal server error" {
		t.Fatalf("expected generic message, got %q", env.Message)
	}
}

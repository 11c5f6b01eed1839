package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liveaevi/skincare-api/internal/logging"
	"github.com/liveaevi/skincare-api/internal/service"
	"github.com/liveaevi/skincare-api/internal/util"
)

type EngagementHTTP struct {
	Svc *service.EngagementService
}

func (h *EngagementHTTP) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "engagement.contact")

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Company string `json:"company"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, email, and message are required"})
	}

	contact, err := h.Svc.SubmitContact(ctx, req.Name, req.Email, req.Company, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, email, and message are required"})
		}
		l.Error("contact_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Contact form submitted successfully",
		"id":      contact.ID,
	})
}

func (h *EngagementHTTP) ListContacts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "engagement.contacts")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	perPage := util.ParseIntDefault(c.QueryParam("per_page"), util.DefaultPageSize)
	status := c.QueryParam("status")

	result, err := h.Svc.ListContacts(ctx, page, perPage, status)
	if err != nil {
		l.Error("list_contacts_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *EngagementHTTP) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "engagement.newsletter")

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email is required"})
	}

	sub, reactivated, err := h.Svc.Subscribe(ctx, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email is required"})
		case errors.Is(err, service.ErrConflict):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already subscribed"})
		default:
			l.Error("newsletter_failed", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
	}

	if reactivated {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Newsletter subscription reactivated",
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Successfully subscribed to newsletter",
		"id":      sub.ID,
	})
}

func (h *EngagementHTTP) Track(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		PageURL  string `json:"page_url"`
		Referrer string `json:"referrer"`
	}
	// Tracking is best effort, record whatever the body carried.
	_ = c.Bind(&req)

	h.Svc.RecordEvent(ctx, req.PageURL, req.Referrer, c.Request().UserAgent(), c.RealIP())

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

func (h *EngagementHTTP) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "engagement.stats")

	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		l.Error("stats_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, stats)
}

package planner

import (
	"context"
	"math"
	"net/http"
	"travelbuddy/internal/web"
	"travelbuddy/pkg/flash"
	"travelbuddy/pkg/logger"
	"travelbuddy/pkg/ratelimit"
	"travelbuddy/pkg/telemetry"
	"travelbuddy/pkg/travelapi"

	"github.com/gin-gonic/gin"
)

const (
	selectDestinationMessage = "Please select a destination"
	loadFailedMessage        = "Failed to load destination. Please try again later."
	createFailedMessage      = "Failed to create itinerary. Please try again later."
	rateLimitedMessage       = "Too many itinerary requests. Please wait a moment."
)

type TravelAPI interface {
	GetDestination(ctx context.Context, id int64) (*travelapi.DestinationDetail, error)
	CreateItinerary(ctx context.Context, req travelapi.ItineraryRequest) (*travelapi.ItineraryResponse, error)
}

type Handler struct {
	api      TravelAPI
	notifier web.Notifier
	limiter  *ratelimit.Limiter
	logger   logger.Logger
}

// NewHandler builds the planner. A nil limiter leaves submissions unlimited.
func NewHandler(api TravelAPI, notifier web.Notifier, limiter *ratelimit.Limiter, log logger.Logger) *Handler {
	return &Handler{
		api:      api,
		notifier: notifier,
		limiter:  limiter,
		logger:   log,
	}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/plan", h.Show)

	submit := []gin.HandlerFunc{h.Submit}
	if h.limiter != nil {
		submit = append([]gin.HandlerFunc{h.limiter.Middleware(h.rateLimited)}, submit...)
	}
	router.POST("/plan", submit...)
}

// Show renders the form for the destination named in the URL, or the
// "select a destination" prompt.
func (h *Handler) Show(c *gin.Context) {
	form := FormFromValues(c.Request.URL.Query())
	if form.DestinationID == 0 {
		h.renderForm(c, http.StatusOK, FormView{Form: form})
		return
	}

	log := telemetry.Logger(c, h.logger).With(logger.Field{Key: "destination_id", Value: form.DestinationID})

	detail, err := h.api.GetDestination(c.Request.Context(), form.DestinationID)
	if err != nil {
		log.Error("failed to load destination for planner", logger.Field{Key: "err", Value: err})
		h.notifier.Push(c, flash.LevelError, loadFailedMessage)

		status := http.StatusBadGateway
		if travelapi.IsNotFound(err) {
			status = http.StatusNotFound
		}
		h.renderForm(c, status, FormView{Form: form})
		return
	}

	h.renderForm(c, http.StatusOK, FormView{
		Destination: detail,
		Form:        form,
		ShowForm:    true,
	})
}

func (h *Handler) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil || FormFromValues(c.Request.PostForm).DestinationID == 0 {
		h.notifier.Push(c, flash.LevelError, selectDestinationMessage)
		c.Redirect(http.StatusSeeOther, "/plan")
		return
	}

	log := telemetry.Logger(c, h.logger)

	var form Form
	if err := c.ShouldBind(&form); err != nil {
		log.Info("planner form rejected", logger.Field{Key: "err", Value: err})
		for _, verr := range ValidationErrors(err) {
			h.notifier.Push(c, flash.LevelError, verr.Message)
		}
		h.renderSubmitted(c, http.StatusBadRequest, FormFromValues(c.Request.PostForm))
		return
	}

	log = log.With(logger.Field{Key: "destination_id", Value: form.DestinationID})

	itinerary, err := h.api.CreateItinerary(c.Request.Context(), form.Request())
	if err != nil {
		log.Error("failed to create itinerary", logger.Field{Key: "err", Value: err})
		h.notifier.Push(c, flash.LevelError, createFailedMessage)
		h.renderSubmitted(c, http.StatusBadGateway, form)
		return
	}

	rows := CostRows(itinerary.CostBreakdown)
	if len(itinerary.Days) != form.DurationDays {
		log.Warn("itinerary day count differs from requested duration",
			logger.Field{Key: "requested", Value: form.DurationDays},
			logger.Field{Key: "returned", Value: len(itinerary.Days)},
		)
	}
	if sum := breakdownSum(rows); len(rows) > 0 && math.Abs(sum-itinerary.TotalCost) > 0.5 {
		log.Warn("cost breakdown does not add up to total",
			logger.Field{Key: "total", Value: itinerary.TotalCost},
			logger.Field{Key: "breakdown_sum", Value: sum},
		)
	}

	web.Render(c, http.StatusOK, "itinerary.html", ResultView{
		Page:      web.NewPage(c, h.notifier, "Your Itinerary", "plan"),
		Itinerary: itinerary,
		Days:      SortedDays(itinerary.Days),
		Form:      form,
		CostRows:  rows,
		ModifyURL: form.URL(),
	})
}

// renderSubmitted shows the form again with what the user sent. The
// destination panel is best effort.
func (h *Handler) renderSubmitted(c *gin.Context, status int, form Form) {
	view := FormView{Form: form, ShowForm: true}
	detail, err := h.api.GetDestination(c.Request.Context(), form.DestinationID)
	if err != nil {
		telemetry.Logger(c, h.logger).Warn("destination panel unavailable", logger.Field{Key: "err", Value: err})
	} else {
		view.Destination = detail
	}
	h.renderForm(c, status, view)
}

func (h *Handler) renderForm(c *gin.Context, status int, view FormView) {
	view.Page = web.NewPage(c, h.notifier, "Plan Your Trip", "plan")
	web.Render(c, status, "planner.html", view)
}

func (h *Handler) rateLimited(c *gin.Context) {
	telemetry.Logger(c, h.logger).Warn("itinerary submission rate limited",
		logger.Field{Key: "client_ip", Value: c.ClientIP()})
	h.notifier.Push(c, flash.LevelError, rateLimitedMessage)

	target := "/plan"
	if err := c.Request.ParseForm(); err == nil {
		if form := FormFromValues(c.Request.PostForm); form.DestinationID != 0 {
			target = form.URL()
		}
	}
	c.Redirect(http.StatusSeeOther, target)
}

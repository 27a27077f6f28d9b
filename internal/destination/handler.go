package destination

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"travelbuddy/internal/web"
	"travelbuddy/pkg/flash"
	"travelbuddy/pkg/logger"
	"travelbuddy/pkg/telemetry"
	"travelbuddy/pkg/travelapi"

	"github.com/gin-gonic/gin"
)

const (
	invalidIDMessage  = "Invalid destination ID"
	loadFailedMessage = "Failed to load destination details. Please try again later."
)

type DestinationGetter interface {
	GetDestination(ctx context.Context, id int64) (*travelapi.DestinationDetail, error)
}

// DetailView is nil-Destination when the panel should say "not found".
type DetailView struct {
	web.Page
	Destination *travelapi.DestinationDetail
	PlanURL     string
}

type Handler struct {
	api      DestinationGetter
	notifier web.Notifier
	logger   logger.Logger
}

func NewHandler(api DestinationGetter, notifier web.Notifier, log logger.Logger) *Handler {
	return &Handler{
		api:      api,
		notifier: notifier,
		logger:   log,
	}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/destinations/:id", h.Show)
}

// ParseID accepts only positive base-10 integers.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func PlanURL(id int64) string {
	return "/plan?destinationId=" + strconv.FormatInt(id, 10)
}

func (h *Handler) Show(c *gin.Context) {
	id, ok := ParseID(c.Param("id"))
	if !ok {
		h.notifier.Push(c, flash.LevelError, invalidIDMessage)
		c.Redirect(http.StatusSeeOther, "/destinations")
		return
	}

	log := telemetry.Logger(c, h.logger).With(logger.Field{Key: "destination_id", Value: id})

	detail, err := h.api.GetDestination(c.Request.Context(), id)
	switch {
	case travelapi.IsNotFound(err):
		log.Info("destination not found")
		web.Render(c, http.StatusNotFound, "destination.html", DetailView{
			Page: web.NewPage(c, h.notifier, "Destination not found", "destinations"),
		})
		return
	case err != nil:
		log.Error("failed to load destination", logger.Field{Key: "err", Value: err})
		h.notifier.Push(c, flash.LevelError, loadFailedMessage)
		web.Render(c, http.StatusBadGateway, "destination.html", DetailView{
			Page: web.NewPage(c, h.notifier, "Destination not found", "destinations"),
		})
		return
	}

	web.Render(c, http.StatusOK, "destination.html", DetailView{
		Page:        web.NewPage(c, h.notifier, detail.Name, "destinations"),
		Destination: detail,
		PlanURL:     PlanURL(detail.ID),
	})
}

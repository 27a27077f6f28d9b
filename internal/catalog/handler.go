package catalog

import (
	"context"
	"net/http"
	"travelbuddy/internal/web"
	"travelbuddy/pkg/flash"
	"travelbuddy/pkg/logger"
	"travelbuddy/pkg/telemetry"
	"travelbuddy/pkg/travelapi"

	"github.com/gin-gonic/gin"
)

const loadFailedMessage = "Failed to load destinations. Please try again later."

type DestinationLister interface {
	ListDestinations(ctx context.Context, filter travelapi.DestinationFilter) ([]travelapi.Destination, error)
}

type Handler struct {
	api      DestinationLister
	notifier web.Notifier
	logger   logger.Logger
}

func NewHandler(api DestinationLister, notifier web.Notifier, log logger.Logger) *Handler {
	return &Handler{
		api:      api,
		notifier: notifier,
		logger:   log,
	}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Home)
	router.GET("/destinations", h.List)
	router.POST("/destinations/filter", h.Apply)
}

func (h *Handler) Home(c *gin.Context) {
	web.Render(c, http.StatusOK, "home.html", web.NewPage(c, h.notifier, "", "home"))
}

// List renders the catalog for the filter found in the URL.
func (h *Handler) List(c *gin.Context) {
	filter := ParseFilter(c.Request.URL.Query())
	log := telemetry.Logger(c, h.logger)

	destinations, err := h.api.ListDestinations(c.Request.Context(), filter.APIFilter())

	state := StateLoaded
	status := http.StatusOK
	switch {
	case err != nil:
		log.Error("failed to load destinations",
			logger.Field{Key: "filter", Value: filter.Query().Encode()},
			logger.Field{Key: "err", Value: err},
		)
		h.notifier.Push(c, flash.LevelError, loadFailedMessage)
		destinations = nil
		state = StateFailed
		status = http.StatusBadGateway
	case len(destinations) == 0:
		state = StateEmpty
	}

	web.Render(c, status, "catalog.html", ListView{
		Page:         web.NewPage(c, h.notifier, "Destinations", "destinations"),
		Filter:       filter,
		State:        state,
		Destinations: destinations,
	})
}

// Apply turns submitted filter fields into a catalog URL. The browser then
// loads that URL, so the fetch is always driven by the URL.
func (h *Handler) Apply(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.notifier.Push(c, flash.LevelError, "Could not read the filter form.")
		c.Redirect(http.StatusSeeOther, "/destinations")
		return
	}
	c.Redirect(http.StatusSeeOther, ParseFilter(c.Request.PostForm).URL())
}

package web

import (
	"travelbuddy/pkg/flash"

	"github.com/gin-gonic/gin"
)

// Notifier delivers transient user-facing notices.
type Notifier interface {
	Push(c *gin.Context, level flash.Level, message string)
	Consume(c *gin.Context) []flash.Notice
}

// Page carries what the layout needs on every view.
type Page struct {
	Title   string
	Nav     string
	Notices []flash.Notice
}

// NewPage drains pending notices so they render exactly once.
func NewPage(c *gin.Context, n Notifier, title, nav string) Page {
	return Page{
		Title:   title,
		Nav:     nav,
		Notices: n.Consume(c),
	}
}

func Render(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}

package web

import "github.com/gin-gonic/gin"

// NewEngine returns a gin engine with the page templates loaded and the
// given middleware installed in order.
func NewEngine(middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(MustTemplates())
	r.Use(middleware...)
	return r
}

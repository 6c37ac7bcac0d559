package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/mail-dispatcher/internal/api/handlers/message"
	"github.com/aliskhannn/mail-dispatcher/internal/api/handlers/optout"
	"github.com/aliskhannn/mail-dispatcher/internal/api/handlers/scheduler"
	"github.com/aliskhannn/mail-dispatcher/internal/middlewares"
)

// New builds the HTTP router.
func New(messages *message.Handler, optOuts *optout.Handler, sched *scheduler.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	msg := api.Group("/messages")
	msg.POST("", messages.Send)
	msg.GET("", messages.List)
	msg.GET("/:id", messages.Get)
	msg.GET("/:id/status", messages.GetStatus)

	opt := api.Group("/optouts")
	opt.POST("", optOuts.Add)
	opt.DELETE("", optOuts.Remove)
	opt.GET("/check", optOuts.Check)

	api.POST("/scheduler/tick", sched.Tick)

	return e
}

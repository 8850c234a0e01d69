package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pagecms/internal/config"
	"github.com/pagecms/internal/handler"
	"gorm.io/gorm"
)

// requestID tags every request with a unique identifier for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// SetupRouter wires the public resolver and the admin API onto a Gin engine.
func SetupRouter(cfg config.AppConfig, gdb *gorm.DB) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("pagecms_session", store))
	r.Use(requestID())

	api := handler.NewAPI(gdb)

	r.GET("/ping", handler.Ping)

	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/pages", api.ListPages)
			auth.GET("/pages/:id", api.GetPage)
			auth.POST("/pages", api.CreatePage)
			auth.PUT("/pages/:id", api.UpdatePage)
			auth.DELETE("/pages/:id", api.DeletePage)

			auth.GET("/routing", api.RoutingInfo)
		}
	}

	// Everything else is resolved against the published page tree.
	r.NoRoute(api.ResolveContent)

	return r
}

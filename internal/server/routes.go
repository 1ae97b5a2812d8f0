package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanhnnhnvn/pythonvietnam/internal/controller"
	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/middleware"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
)

const (
	jsonBodyLimit   = 1 << 20  // 1 MiB for JSON payloads
	uploadBodyLimit = 10 << 20 // 10 MiB for file uploads
)

func registerRoutes(r *gin.Engine, ct *controller.Controller, db *database.DBinstanceStruct) {
	r.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{Error: "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, utilities.MessageResponse{Message: "ok"})
	})

	api := r.Group("/api/v1")

	public := api.Group("", middleware.SizeLimit(jsonBodyLimit))
	{
		public.POST("/auth/google", ct.GoogleLogin)
		public.POST("/auth/login", ct.LocalLogin)
		public.POST("/auth/logout", ct.Logout)

		public.GET("/posts", ct.ListPosts)
		public.GET("/posts/:slug", ct.GetPostBySlug)

		public.GET("/jobs", middleware.OptionalAuth(db), ct.ListJobs)
		public.GET("/jobs/:slug", ct.GetJobBySlug)
		public.POST("/jobs/:slug/applications", ct.CreateApplication)

		public.POST("/ai/summarize", ct.Summarize)
	}

	api.POST("/upload", middleware.SizeLimit(uploadBodyLimit), ct.UploadFile)
	api.POST("/ai/parse-cv", middleware.SizeLimit(uploadBodyLimit), ct.ParseCV)

	authed := api.Group("", middleware.SizeLimit(jsonBodyLimit), middleware.RequireAuth(db))
	{
		authed.GET("/auth/me", ct.Me)
		authed.POST("/employer-applications", ct.ApplyAsEmployer)

		manage := authed.Group("", middleware.CheckRole(model.RoleEmployer, model.RoleAdmin))
		{
			manage.POST("/jobs", ct.CreateJob)
			manage.PATCH("/jobs/:id", ct.UpdateJob)
			manage.DELETE("/jobs/:id", ct.DeleteJob)
			manage.GET("/jobs/:slug/applications", ct.ListApplications)
		}

		admin := authed.Group("", middleware.CheckRole(model.RoleAdmin))
		{
			admin.POST("/posts", ct.CreatePost)
			admin.PUT("/posts/:id", ct.UpdatePost)
			admin.DELETE("/posts/:id", ct.DeletePost)

			admin.GET("/employer-applications", ct.ListEmployerApplications)
			admin.PATCH("/employer-applications/:id/approve", ct.ApproveEmployerApplication)
			admin.PATCH("/employer-applications/:id/reject", ct.RejectEmployerApplication)

			admin.POST("/ai/generate-post", ct.GeneratePost)
		}
	}
}

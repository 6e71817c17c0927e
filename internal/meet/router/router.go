// Package router provides meet module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/swimdq/internal/meet/handler"
	"github.com/festy23/swimdq/internal/meet/links"
	"github.com/festy23/swimdq/internal/meet/repository"
	"github.com/festy23/swimdq/internal/meet/service"
)

// RegisterRoutes registers meet administration routes under /admin.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, builder *links.Builder, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, builder, logger)
	h := handler.New(svc, logger)

	admin := r.Group("/admin/meets")
	admin.POST("", h.CreateMeet)
	admin.GET("", h.ListMeets)
	admin.POST("/:meetId/close", h.CloseMeet)
	admin.GET("/:meetId/qrcode", h.SubmitQRCode)
}

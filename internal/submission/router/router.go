// Package router provides DQ submission module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/swimdq/internal/infraction"
	meetRepository "github.com/festy23/swimdq/internal/meet/repository"
	"github.com/festy23/swimdq/internal/submission/handler"
	"github.com/festy23/swimdq/internal/submission/repository"
	"github.com/festy23/swimdq/internal/submission/service"
)

// RegisterRoutes registers the submit page routes under /submit/:meetId.
// sessionMiddleware must attach a gin-contrib session to the request.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	taxonomy *infraction.Taxonomy,
	sessionMiddleware gin.HandlerFunc,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	meets := meetRepository.New(db, logger)
	svc := service.New(repo, meets, taxonomy, logger)
	h := handler.New(svc, logger)

	submit := r.Group("/submit/:meetId", sessionMiddleware)
	submit.GET("", h.GetForm)
	submit.POST("", h.Submit)
	submit.GET("/infractions", h.ListInfractions)
	submit.GET("/draft", h.GetDraft)
	submit.PUT("/draft/stroke", h.SelectStroke)
	submit.POST("/draft/toggle", h.ToggleInfraction)
	submit.PUT("/draft/other", h.SetOtherText)
}

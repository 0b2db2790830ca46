package mocksource

import (
	"roster-hub/core/logger"
	"roster-hub/core/sources/lms"
	"roster-hub/core/sources/sample"
	"roster-hub/core/sources/sis"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the sample records.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{logger: l}
}

// RegisterRoutes registers the mock SIS and LMS routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	sisGroup := app.Group("/mock/sis")
	sisGroup.Get("/"+sis.EndpointOrgs, h.records(func() any { return sample.SISOrgs() }))
	sisGroup.Get("/"+sis.EndpointStudents, h.records(func() any { return sample.SISStudents() }))
	sisGroup.Get("/"+sis.EndpointTeachers, h.records(func() any { return sample.SISTeachers() }))
	sisGroup.Get("/"+sis.EndpointCourses, h.records(func() any { return sample.SISCourses() }))

	lmsGroup := app.Group("/mock/lms")
	lmsGroup.Get("/"+lms.EndpointUsers, h.records(func() any { return sample.LMSUsers() }))
	lmsGroup.Get("/"+lms.EndpointCourses, h.records(func() any { return sample.LMSCourses() }))
}

// records returns a handler that writes a freshly built record set.
// @Summary Mock Source Records
// @Description Returns the sample records of one SIS or LMS endpoint as a JSON array.
// @Tags mock
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /mock/sis/students [get]
func (h *Handler) records(build func() any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logger.WithRayID(h.logger, c).Debug("Serving mock records", zap.String("path", c.Path()))
		return c.JSON(build())
	}
}

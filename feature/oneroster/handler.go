package oneroster

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"roster-hub/core/logger"
	"roster-hub/core/query"
	"roster-hub/core/reconcile"
	"roster-hub/core/roster"
	"roster-hub/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderTotalCount carries the filtered collection size on list responses.
const HeaderTotalCount = "X-Total-Count"

const (
	defaultStatusRuns = 10
	maxStatusRuns     = 100
)

// Handler handles HTTP requests for the OneRoster API.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the OneRoster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	v1p1 := app.Group("/ims/oneroster/v1p1")
	v1p1.Get("/orgs", h.HandleListOrgs)
	v1p1.Get("/orgs/:sourcedId", h.HandleGetOrg)
	v1p1.Get("/users", h.HandleListUsers)
	v1p1.Get("/users/:sourcedId", h.HandleGetUser)
	v1p1.Get("/users/:sourcedId/classes", h.HandleUserClasses)
	v1p1.Get("/courses", h.HandleListCourses)
	v1p1.Get("/courses/:sourcedId", h.HandleGetCourse)
	v1p1.Get("/courses/:sourcedId/classes", h.HandleCourseClasses)
	v1p1.Get("/classes", h.HandleListClasses)
	v1p1.Get("/classes/:sourcedId", h.HandleGetClass)
	v1p1.Get("/classes/:sourcedId/students", h.HandleClassStudents)
	v1p1.Get("/classes/:sourcedId/teachers", h.HandleClassTeachers)
	v1p1.Get("/enrollments", h.HandleListEnrollments)
	v1p1.Get("/enrollments/:sourcedId", h.HandleGetEnrollment)
	v1p1.Get("/academicSessions", h.HandleListAcademicSessions)
	v1p1.Get("/academicSessions/:sourcedId", h.HandleGetAcademicSession)

	api := app.Group("/api/v1/oneroster")
	api.Get("/all", h.HandleAll)
	api.Get("/status", h.HandleStatus)
	api.Post("/refresh", h.HandleRefresh)
}

// params reads and validates limit, offset and filter. Absent values take the
// defaults. Bad values are rejected here, before any snapshot is read.
func params(c *fiber.Ctx) (query.Params, error) {
	p := query.DefaultParams()
	p.Filter = c.Query("filter")

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, fmt.Errorf("%w: limit %q is not an integer", query.ErrInvalidQueryParameter, raw)
		}
		p.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, fmt.Errorf("%w: offset %q is not an integer", query.ErrInvalidQueryParameter, raw)
		}
		p.Offset = n
	}
	return p, p.Validate()
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, query.ErrInvalidQueryParameter):
		return fiber.StatusBadRequest
	case errors.Is(err, query.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrSnapshotUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		l.Error("Request failed", zap.String("path", c.Path()), zap.Int("status", code), zap.Error(err))
	} else {
		l.Debug("Request rejected", zap.String("path", c.Path()), zap.Int("status", code), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func writePage[T any](c *fiber.Ctx, page query.Page[T]) error {
	c.Set(HeaderTotalCount, strconv.Itoa(page.Total))
	return c.JSON(page.Items)
}

func listEntities[T any](h *Handler, c *fiber.Ctx, fetch func(context.Context, query.Params) (query.Page[T], error)) error {
	p, err := params(c)
	if err != nil {
		return h.fail(c, err)
	}
	page, err := fetch(c.Context(), p)
	if err != nil {
		return h.fail(c, err)
	}
	return writePage(c, page)
}

func getEntity[T any](h *Handler, c *fiber.Ctx, fetch func(context.Context, string) (T, error)) error {
	item, err := fetch(c.Context(), c.Params("sourcedId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// related lists the entities linked to the owner in the sourcedId path
// parameter. A missing owner is a 404, not an empty list.
func related[O, T any](h *Handler, c *fiber.Ctx, owner func(context.Context, string) (O, error), fetch func(context.Context, string, query.Params) (query.Page[T], error)) error {
	p, err := params(c)
	if err != nil {
		return h.fail(c, err)
	}
	id := c.Params("sourcedId")
	if _, err := owner(c.Context(), id); err != nil {
		return h.fail(c, err)
	}
	page, err := fetch(c.Context(), id, p)
	if err != nil {
		return h.fail(c, err)
	}
	return writePage(c, page)
}

// HandleListOrgs lists organizations.
// @Summary List Orgs
// @Description Returns a page of organizations. The total number of matches is returned in X-Total-Count.
// @Tags oneroster
// @Produce json
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param filter query string false "Filter expression, e.g. type=school"
// @Success 200 {array} roster.Org
// @Failure 400 {object} map[string]string "Invalid Query Parameter"
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /ims/oneroster/v1p1/orgs [get]
func (h *Handler) HandleListOrgs(c *fiber.Ctx) error {
	return listEntities(h, c, h.service.Orgs)
}

// HandleGetOrg returns one organization.
// @Summary Get Org
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Org sourcedId"
// @Success 200 {object} roster.Org
// @Failure 404 {object} map[string]string "Not Found"
// @Router /ims/oneroster/v1p1/orgs/{sourcedId} [get]
func (h *Handler) HandleGetOrg(c *fiber.Ctx) error {
	return getEntity(h, c, h.service.Org)
}

// HandleListUsers lists users.
// @Summary List Users
// @Description Returns a page of users. Supports filters such as role=student or email=alice@example.com.
// @Tags oneroster
// @Produce json
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param filter query string false "Filter expression"
// @Success 200 {array} roster.User
// @Failure 400 {object} map[string]string "Invalid Query Parameter"
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /ims/oneroster/v1p1/users [get]
func (h *Handler) HandleListUsers(c *fiber.Ctx) error {
	return listEntities(h, c, h.service.Users)
}

// HandleGetUser returns one user.
// @Summary Get User
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "User sourcedId"
// @Success 200 {object} roster.User
// @Failure 404 {object} map[string]string "Not Found"
// @Router /ims/oneroster/v1p1/users/{sourcedId} [get]
func (h *Handler) HandleGetUser(c *fiber.Ctx) error {
	return getEntity(h, c, h.service.User)
}

// HandleUserClasses lists the classes a user is enrolled in.
// @Summary List Classes For User
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "User sourcedId"
// @Param role query string false "Restrict to enrollments with this role"
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} roster.Class
// @Failure 404 {object} map[string]string "User Not Found"
// @Router /ims/oneroster/v1p1/users/{sourcedId}/classes [get]
func (h *Handler) HandleUserClasses(c *fiber.Ctx) error {
	role := c.Query("role")
	return related(h, c, h.service.User, func(ctx context.Context, id string, p query.Params) (query.Page[roster.Class], error) {
		return h.service.UserClasses(ctx, id, role, p)
	})
}

// HandleListCourses lists courses.
// @Summary List Courses
// @Tags oneroster
// @Produce json
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param filter query string false "Filter expression, e.g. orgSourcedId=sis_org_SCH001"
// @Success 200 {array} roster.Course
// @Failure 400 {object} map[string]string "Invalid Query Parameter"
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /ims/oneroster/v1p1/courses [get]
func (h *Handler) HandleListCourses(c *fiber.Ctx) error {
	return listEntities(h, c, h.service.Courses)
}

// HandleGetCourse returns one course.
// @Summary Get Course
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Course sourcedId"
// @Success 200 {object} roster.Course
// @Failure 404 {object} map[string]string "Not Found"
// @Router /ims/oneroster/v1p1/courses/{sourcedId} [get]
func (h *Handler) HandleGetCourse(c *fiber.Ctx) error {
	return getEntity(h, c, h.service.Course)
}

// HandleCourseClasses lists the classes of a course.
// @Summary List Classes For Course
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Course sourcedId"
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} roster.Class
// @Failure 404 {object} map[string]string "Course Not Found"
// @Router /ims/oneroster/v1p1/courses/{sourcedId}/classes [get]
func (h *Handler) HandleCourseClasses(c *fiber.Ctx) error {
	return related(h, c, h.service.Course, h.service.CourseClasses)
}

// HandleListClasses lists classes.
// @Summary List Classes
// @Tags oneroster
// @Produce json
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param filter query string false "Filter expression"
// @Success 200 {array} roster.Class
// @Failure 400 {object} map[string]string "Invalid Query Parameter"
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /ims/oneroster/v1p1/classes [get]
func (h *Handler) HandleListClasses(c *fiber.Ctx) error {
	return listEntities(h, c, h.service.Classes)
}

// HandleGetClass returns one class.
// @Summary Get Class
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Class sourcedId"
// @Success 200 {object} roster.Class
// @Failure 404 {object} map[string]string "Not Found"
// @Router /ims/oneroster/v1p1/classes/{sourcedId} [get]
func (h *Handler) HandleGetClass(c *fiber.Ctx) error {
	return getEntity(h, c, h.service.Class)
}

// HandleClassStudents lists the students of a class.
// @Summary List Students For Class
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Class sourcedId"
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} roster.User
// @Failure 404 {object} map[string]string "Class Not Found"
// @Router /ims/oneroster/v1p1/classes/{sourcedId}/students [get]
func (h *Handler) HandleClassStudents(c *fiber.Ctx) error {
	return related(h, c, h.service.Class, h.service.ClassStudents)
}

// HandleClassTeachers lists the teachers of a class.
// @Summary List Teachers For Class
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Class sourcedId"
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} roster.User
// @Failure 404 {object} map[string]string "Class Not Found"
// @Router /ims/oneroster/v1p1/classes/{sourcedId}/teachers [get]
func (h *Handler) HandleClassTeachers(c *fiber.Ctx) error {
	return related(h, c, h.service.Class, h.service.ClassTeachers)
}

// HandleListEnrollments lists enrollments.
// @Summary List Enrollments
// @Tags oneroster
// @Produce json
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param filter query string false "Filter expression, e.g. role=teacher"
// @Success 200 {array} roster.Enrollment
// @Failure 400 {object} map[string]string "Invalid Query Parameter"
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /ims/oneroster/v1p1/enrollments [get]
func (h *Handler) HandleListEnrollments(c *fiber.Ctx) error {
	return listEntities(h, c, h.service.Enrollments)
}

// HandleGetEnrollment returns one enrollment.
// @Summary Get Enrollment
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Enrollment sourcedId"
// @Success 200 {object} roster.Enrollment
// @Failure 404 {object} map[string]string "Not Found"
// @Router /ims/oneroster/v1p1/enrollments/{sourcedId} [get]
func (h *Handler) HandleGetEnrollment(c *fiber.Ctx) error {
	return getEntity(h, c, h.service.Enrollment)
}

// HandleListAcademicSessions lists academic sessions.
// @Summary List Academic Sessions
// @Tags oneroster
// @Produce json
// @Param limit query int false "Page size (1-10000)" default(100)
// @Param offset query int false "Page offset" default(0)
// @Param filter query string false "Filter expression, e.g. type=schoolYear"
// @Success 200 {array} roster.AcademicSession
// @Failure 400 {object} map[string]string "Invalid Query Parameter"
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /ims/oneroster/v1p1/academicSessions [get]
func (h *Handler) HandleListAcademicSessions(c *fiber.Ctx) error {
	return listEntities(h, c, h.service.AcademicSessions)
}

// HandleGetAcademicSession returns one academic session.
// @Summary Get Academic Session
// @Tags oneroster
// @Produce json
// @Param sourcedId path string true "Academic session sourcedId"
// @Success 200 {object} roster.AcademicSession
// @Failure 404 {object} map[string]string "Not Found"
// @Router /ims/oneroster/v1p1/academicSessions/{sourcedId} [get]
func (h *Handler) HandleGetAcademicSession(c *fiber.Ctx) error {
	return getEntity(h, c, h.service.AcademicSession)
}

// HandleAll returns the whole snapshot.
// @Summary Full Snapshot
// @Description Returns every entity of the current snapshot grouped by type.
// @Tags admin
// @Produce json
// @Success 200 {object} roster.Snapshot
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /api/v1/oneroster/all [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	snap, err := h.service.All(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snap)
}

// HandleStatus reports the cache state and the recent refresh runs.
// @Summary Cache Status
// @Tags admin
// @Produce json
// @Param runs query int false "Number of journal entries to include (0-100)" default(10)
// @Success 200 {object} StatusReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/oneroster/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	runs := defaultStatusRuns
	if raw := c.Query("runs"); raw != "" {
		runs = min(max(utils.ToInt(raw), 0), maxStatusRuns)
	}

	report, err := h.service.Status(c.Context(), runs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleRefresh forces a snapshot rebuild.
// @Summary Force Refresh
// @Description Rebuilds the snapshot from the sources. By default the call waits for the result; a failed rebuild keeps the previous snapshot and is reported in last_error. With wait=false the rebuild runs in the background and 202 is returned.
// @Tags admin
// @Produce json
// @Param wait query boolean false "Wait for the rebuild to finish" default(true)
// @Success 200 {object} reconcile.Status
// @Success 202 {object} reconcile.Status
// @Failure 503 {object} map[string]string "Snapshot Unavailable"
// @Router /api/v1/oneroster/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	wait := true
	if raw := c.Query("wait"); raw != "" {
		wait = utils.ToBool(raw)
	}
	l.Info("Forced refresh requested", zap.Bool("wait", wait))

	if !wait {
		h.service.RefreshAsync()
		return c.Status(fiber.StatusAccepted).JSON(h.service.snapshots.Status())
	}

	status, err := h.service.Refresh(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	if status.LastError != "" {
		l.Warn("Forced refresh kept the previous snapshot", zap.String("error", status.LastError))
	}
	return c.JSON(status)
}

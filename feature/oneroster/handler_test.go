package oneroster_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"roster-hub/core/journal"
	"roster-hub/core/reconcile"
	"roster-hub/core/roster"
	"roster-hub/core/sources/lms"
	"roster-hub/core/sources/sample"
	"roster-hub/core/sources/sis"
	"roster-hub/feature/oneroster"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var passTime = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

// fakeSnapshots serves a fixed snapshot and records forced refreshes.
type fakeSnapshots struct {
	mu         sync.Mutex
	snap       *roster.Snapshot
	err        error
	refreshErr error
	refreshes  int
	gets       int
	status     reconcile.Status
}

func (f *fakeSnapshots) Get(context.Context) (*roster.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	return f.snap, f.err
}

func (f *fakeSnapshots) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *fakeSnapshots) Refresh(context.Context) (*roster.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	f.status.Refreshes++
	return f.snap, nil
}

func (f *fakeSnapshots) Status() reconcile.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeSnapshots) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

type fakeHistory struct {
	runs  []journal.RefreshRun
	err   error
	limit int
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]journal.RefreshRun, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.runs[:min(limit, len(f.runs))], nil
}

func sampleSnapshot() *roster.Snapshot {
	primary := sis.NewAdapter(nil).Transform(sample.SIS(), passTime)
	secondary := lms.NewAdapter(nil).Transform(sample.LMS(), passTime)
	result := reconcile.Reconcile(primary, secondary)
	result.Entities.Stamp(roster.NewTimestamp(passTime))
	return &roster.Snapshot{Entities: result.Entities, CreatedAt: passTime}
}

func setupApp(t *testing.T, snaps oneroster.Snapshots, history oneroster.History) *fiber.App {
	app := fiber.New()
	feature := oneroster.NewFeature(snaps, history, zap.NewNop())
	assert.Equal(t, "oneroster", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, path string, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	if out != nil {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp
}

func ids[T interface{ ID() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID())
	}
	return out
}

func TestHandler_Lists(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{snap: sampleSnapshot()}, nil)

	tests := []struct {
		path  string
		total int
	}{
		{"/ims/oneroster/v1p1/orgs", 2},
		{"/ims/oneroster/v1p1/users", 4},
		{"/ims/oneroster/v1p1/courses", 3},
		{"/ims/oneroster/v1p1/classes", 3},
		{"/ims/oneroster/v1p1/enrollments", 7},
		{"/ims/oneroster/v1p1/academicSessions", 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var items []map[string]any
			resp := get(t, app, tt.path, &items)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, fmt.Sprint(tt.total), resp.Header.Get(oneroster.HeaderTotalCount))
			assert.Len(t, items, tt.total)
		})
	}
}

func TestHandler_WireFormat(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{snap: sampleSnapshot()}, nil)

	var user map[string]any
	resp := get(t, app, "/ims/oneroster/v1p1/users/sis_user_student_S1001", &user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "sis_user_student_S1001", user["sourcedId"])
	assert.Equal(t, "active", user["status"])
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, "2024-10-01T12:00:00.000000Z", user["dateLastModified"])
}

func TestHandler_Pagination(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{snap: sampleSnapshot()}, nil)

	var page []roster.Enrollment
	resp := get(t, app, "/ims/oneroster/v1p1/enrollments?limit=3&offset=5", &page)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "7", resp.Header.Get(oneroster.HeaderTotalCount))
	assert.Len(t, page, 2)

	var empty []roster.Enrollment
	resp = get(t, app, "/ims/oneroster/v1p1/enrollments?offset=50", &empty)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestHandler_InvalidParams(t *testing.T) {
	snaps := &fakeSnapshots{err: errors.New("must not be called")}
	app := setupApp(t, snaps, nil)

	for _, q := range []string{"limit=0", "limit=10001", "limit=abc", "offset=-1", "offset=x"} {
		t.Run(q, func(t *testing.T) {
			var body map[string]string
			resp := get(t, app, "/ims/oneroster/v1p1/users?"+q, &body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, body["error"], "invalid query parameter")
		})
	}
	assert.Zero(t, snaps.getCount())
}

func TestHandler_InvalidParamsOnRelationships(t *testing.T) {
	snaps := &fakeSnapshots{snap: sampleSnapshot()}
	app := setupApp(t, snaps, nil)

	for _, path := range []string{
		"/ims/oneroster/v1p1/classes/nope/students?limit=0",
		"/ims/oneroster/v1p1/classes/sis_class_MATH5A_001/students?limit=0",
		"/ims/oneroster/v1p1/classes/sis_class_MATH5A_001/teachers?offset=-1",
		"/ims/oneroster/v1p1/courses/nope/classes?limit=10001",
		"/ims/oneroster/v1p1/users/nope/classes?limit=abc",
	} {
		t.Run(path, func(t *testing.T) {
			var body map[string]string
			resp := get(t, app, path, &body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, body["error"], "invalid query parameter")
		})
	}
	assert.Zero(t, snaps.getCount())
}

func TestHandler_Filter(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{snap: sampleSnapshot()}, nil)

	var courses []roster.Course
	resp := get(t, app, "/ims/oneroster/v1p1/courses?filter=orgSourcedId%3Dsis_org_SCH001", &courses)
	assert.Equal(t, "3", resp.Header.Get(oneroster.HeaderTotalCount))
	assert.Equal(t, []string{"sis_course_MATH5A", "sis_course_ELA5A", "sis_course_SCI5"}, ids(courses))

	courses = nil
	resp = get(t, app, "/ims/oneroster/v1p1/courses?filter=orgSourcedId%3Dsis_org_NOPE", &courses)
	assert.Equal(t, "0", resp.Header.Get(oneroster.HeaderTotalCount))
	assert.Empty(t, courses)

	// Unknown keys are ignored
	courses = nil
	resp = get(t, app, "/ims/oneroster/v1p1/courses?filter=color%3Dblue", &courses)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, courses, 3)
}

func TestHandler_NotFound(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{snap: sampleSnapshot()}, nil)

	paths := []string{
		"/ims/oneroster/v1p1/orgs/nope",
		"/ims/oneroster/v1p1/users/nope",
		"/ims/oneroster/v1p1/courses/nope",
		"/ims/oneroster/v1p1/classes/nope",
		"/ims/oneroster/v1p1/enrollments/nope",
		"/ims/oneroster/v1p1/academicSessions/nope",
		"/ims/oneroster/v1p1/classes/nope/students",
		"/ims/oneroster/v1p1/classes/nope/teachers",
		"/ims/oneroster/v1p1/courses/nope/classes",
		"/ims/oneroster/v1p1/users/nope/classes",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			var body map[string]string
			resp := get(t, app, path, &body)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
			assert.Contains(t, body["error"], "not found")
		})
	}
}

func TestHandler_Relationships(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{snap: sampleSnapshot()}, nil)

	var students []roster.User
	resp := get(t, app, "/ims/oneroster/v1p1/classes/sis_class_MATH5A_001/students", &students)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"sis_user_student_S1001", "sis_user_student_S1002"}, ids(students))

	var teachers []roster.User
	get(t, app, "/ims/oneroster/v1p1/classes/sis_class_MATH5A_001/teachers", &teachers)
	assert.Equal(t, []string{"sis_user_teacher_T201"}, ids(teachers))

	var classes []roster.Class
	get(t, app, "/ims/oneroster/v1p1/courses/sis_course_SCI5/classes", &classes)
	assert.Equal(t, []string{"sis_class_SCI5_002"}, ids(classes))

	classes = nil
	get(t, app, "/ims/oneroster/v1p1/users/sis_user_teacher_T201/classes?role=teacher", &classes)
	assert.Equal(t, []string{"sis_class_MATH5A_001", "sis_class_ELA5A_001"}, ids(classes))
}

func TestHandler_SnapshotUnavailable(t *testing.T) {
	err := fmt.Errorf("%w: %w", reconcile.ErrSnapshotUnavailable, errors.New("sis down"))
	app := setupApp(t, &fakeSnapshots{err: err}, nil)

	for _, path := range []string{"/ims/oneroster/v1p1/orgs", "/ims/oneroster/v1p1/orgs/x", "/api/v1/oneroster/all"} {
		var body map[string]string
		resp := get(t, app, path, &body)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode, path)
		assert.Contains(t, body["error"], "sis down")
	}
}

func TestHandler_InternalError(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{err: errors.New("boom")}, nil)

	resp := get(t, app, "/ims/oneroster/v1p1/users", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandler_All(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{snap: sampleSnapshot()}, nil)

	var body map[string][]map[string]any
	resp := get(t, app, "/api/v1/oneroster/all", &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["orgs"], 2)
	assert.Len(t, body["users"], 4)
	assert.Len(t, body["enrollments"], 7)
	assert.Len(t, body["academicSessions"], 2)
}

func TestHandler_Status(t *testing.T) {
	history := &fakeHistory{runs: []journal.RefreshRun{
		{ID: "run-2", Status: "failed", Error: "lms down"},
		{ID: "run-1", Status: "succeeded", Entities: 21},
	}}
	snaps := &fakeSnapshots{snap: sampleSnapshot(), status: reconcile.Status{Ready: true, Refreshes: 2, Failures: 1}}
	app := setupApp(t, snaps, history)

	var report oneroster.StatusReport
	resp := get(t, app, "/api/v1/oneroster/status", &report)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, report.Cache.Ready)
	assert.Equal(t, int64(1), report.Cache.Failures)
	assert.Len(t, report.Runs, 2)
	assert.Equal(t, 10, history.limit)

	report = oneroster.StatusReport{}
	get(t, app, "/api/v1/oneroster/status?runs=1", &report)
	require.Len(t, report.Runs, 1)
	assert.Equal(t, "run-2", report.Runs[0].ID)

	report = oneroster.StatusReport{}
	get(t, app, "/api/v1/oneroster/status?runs=0", &report)
	assert.Empty(t, report.Runs)

	history.err = errors.New("db gone")
	resp = get(t, app, "/api/v1/oneroster/status", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandler_StatusWithoutJournal(t *testing.T) {
	app := setupApp(t, &fakeSnapshots{status: reconcile.Status{}}, nil)

	var report map[string]any
	resp := get(t, app, "/api/v1/oneroster/status", &report)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, report, "cache")
	assert.NotContains(t, report, "runs")
}

func TestHandler_Refresh(t *testing.T) {
	snaps := &fakeSnapshots{snap: sampleSnapshot()}
	app := setupApp(t, snaps, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/oneroster/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, snaps.refreshCount())

	var status reconcile.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, int64(1), status.Refreshes)

	snaps.refreshErr = fmt.Errorf("%w: %w", reconcile.ErrSnapshotUnavailable, errors.New("sis down"))
	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/oneroster/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandler_RefreshNoWait(t *testing.T) {
	snaps := &fakeSnapshots{snap: sampleSnapshot()}
	app := setupApp(t, snaps, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/oneroster/refresh?wait=false", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Eventually(t, func() bool { return snaps.refreshCount() == 1 }, time.Second, 10*time.Millisecond)
}

package query

import (
	"context"
	"fmt"
	"strings"

	"roster-hub/core/roster"

	"go.uber.org/zap"
)

// Provider supplies the current snapshot. *reconcile.Cache implements it.
type Provider interface {
	Get(ctx context.Context) (*roster.Snapshot, error)
}

// Engine answers OneRoster reads against the snapshot held by a Provider.
type Engine struct {
	snapshots Provider
	log       *zap.Logger
}

// NewEngine creates a query engine.
func NewEngine(snapshots Provider, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{snapshots: snapshots, log: log}
}

type identified interface {
	ID() string
}

// snapshot validates p before fetching the snapshot.
func (e *Engine) snapshot(ctx context.Context, p Params) (*roster.Snapshot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return e.snapshots.Get(ctx)
}

// list filters items with p.Filter and paginates the result.
func list[T any](log *zap.Logger, items []T, t table[T], p Params) Page[T] {
	if p.Filter == "" {
		return paginate(items, p)
	}

	pred, ok := ParsePredicate(p.Filter)
	if !ok {
		log.Debug("Ignoring malformed filter", zap.String("filter", p.Filter))
		return paginate(items, p)
	}
	match := t.matcher(pred)
	if match == nil {
		log.Debug("Ignoring filter on unknown field", zap.String("field", pred.Field))
		return paginate(items, p)
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			filtered = append(filtered, item)
		}
	}
	return paginate(filtered, p)
}

func find[T identified](items []T, kind, id string) (T, error) {
	for _, item := range items {
		if item.ID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}

// Orgs lists organizations.
func (e *Engine) Orgs(ctx context.Context, p Params) (Page[roster.Org], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.Org]{}, err
	}
	return list(e.log, snap.Orgs, orgTable, p), nil
}

// Org returns one organization by sourcedId.
func (e *Engine) Org(ctx context.Context, id string) (roster.Org, error) {
	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return roster.Org{}, err
	}
	return find(snap.Orgs, "org", id)
}

// Users lists users.
func (e *Engine) Users(ctx context.Context, p Params) (Page[roster.User], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.User]{}, err
	}
	return list(e.log, snap.Users, userTable, p), nil
}

// User returns one user by sourcedId.
func (e *Engine) User(ctx context.Context, id string) (roster.User, error) {
	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return roster.User{}, err
	}
	return find(snap.Users, "user", id)
}

// Courses lists courses.
func (e *Engine) Courses(ctx context.Context, p Params) (Page[roster.Course], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.Course]{}, err
	}
	return list(e.log, snap.Courses, courseTable, p), nil
}

// Course returns one course by sourcedId.
func (e *Engine) Course(ctx context.Context, id string) (roster.Course, error) {
	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return roster.Course{}, err
	}
	return find(snap.Courses, "course", id)
}

// Classes lists classes.
func (e *Engine) Classes(ctx context.Context, p Params) (Page[roster.Class], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.Class]{}, err
	}
	return list(e.log, snap.Classes, classTable, p), nil
}

// Class returns one class by sourcedId.
func (e *Engine) Class(ctx context.Context, id string) (roster.Class, error) {
	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return roster.Class{}, err
	}
	return find(snap.Classes, "class", id)
}

// Enrollments lists enrollments.
func (e *Engine) Enrollments(ctx context.Context, p Params) (Page[roster.Enrollment], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.Enrollment]{}, err
	}
	return list(e.log, snap.Enrollments, enrollmentTable, p), nil
}

// Enrollment returns one enrollment by sourcedId.
func (e *Engine) Enrollment(ctx context.Context, id string) (roster.Enrollment, error) {
	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return roster.Enrollment{}, err
	}
	return find(snap.Enrollments, "enrollment", id)
}

// AcademicSessions lists academic sessions.
func (e *Engine) AcademicSessions(ctx context.Context, p Params) (Page[roster.AcademicSession], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.AcademicSession]{}, err
	}
	return list(e.log, snap.AcademicSessions, sessionTable, p), nil
}

// AcademicSession returns one academic session by sourcedId.
func (e *Engine) AcademicSession(ctx context.Context, id string) (roster.AcademicSession, error) {
	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return roster.AcademicSession{}, err
	}
	return find(snap.AcademicSessions, "academicSession", id)
}

// ClassStudents lists the users enrolled as students in classID, in user
// collection order. A missing class yields an empty page.
func (e *Engine) ClassStudents(ctx context.Context, classID string, p Params) (Page[roster.User], error) {
	return e.classMembers(ctx, classID, roster.RoleStudent, p)
}

// ClassTeachers lists the users enrolled as teachers in classID.
func (e *Engine) ClassTeachers(ctx context.Context, classID string, p Params) (Page[roster.User], error) {
	return e.classMembers(ctx, classID, roster.RoleTeacher, p)
}

func (e *Engine) classMembers(ctx context.Context, classID string, role roster.Role, p Params) (Page[roster.User], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.User]{}, err
	}

	members := make(map[string]struct{})
	for _, en := range snap.Enrollments {
		if en.ClassSourcedID == classID && en.Role == role {
			members[en.UserSourcedID] = struct{}{}
		}
	}

	users := make([]roster.User, 0, len(members))
	for _, u := range snap.Users {
		if _, ok := members[u.SourcedID]; ok {
			users = append(users, u)
		}
	}
	return list(e.log, users, userTable, p), nil
}

// CourseClasses lists the classes of courseID.
func (e *Engine) CourseClasses(ctx context.Context, courseID string, p Params) (Page[roster.Class], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.Class]{}, err
	}

	classes := make([]roster.Class, 0)
	for _, c := range snap.Classes {
		if c.CourseSourcedID == courseID {
			classes = append(classes, c)
		}
	}
	return list(e.log, classes, classTable, p), nil
}

// UserClasses lists the classes userID is enrolled in. A non-empty role
// restricts the result to enrollments with that role (case-insensitive).
func (e *Engine) UserClasses(ctx context.Context, userID, role string, p Params) (Page[roster.Class], error) {
	snap, err := e.snapshot(ctx, p)
	if err != nil {
		return Page[roster.Class]{}, err
	}

	ids := make(map[string]struct{})
	for _, en := range snap.Enrollments {
		if en.UserSourcedID != userID {
			continue
		}
		if role != "" && !strings.EqualFold(string(en.Role), role) {
			continue
		}
		ids[en.ClassSourcedID] = struct{}{}
	}

	classes := make([]roster.Class, 0, len(ids))
	for _, c := range snap.Classes {
		if _, ok := ids[c.SourcedID]; ok {
			classes = append(classes, c)
		}
	}
	return list(e.log, classes, classTable, p), nil
}

// All returns the whole current snapshot.
func (e *Engine) All(ctx context.Context) (*roster.Snapshot, error) {
	return e.snapshots.Get(ctx)
}

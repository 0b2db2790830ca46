package lms

import (
	"context"
	"strings"
	"time"

	"roster-hub/core/roster"
	"roster-hub/core/sources"

	"golang.org/x/sync/errgroup"
)

// Name is the source name used in logs and errors.
const Name = "lms"

// Endpoints served by an LMS, relative to its base URL.
const (
	EndpointUsers   = "users"
	EndpointCourses = "courses"
)

// Placeholder names used when an LMS account has no usable full name.
const (
	unknownGivenName  = "Unknown"
	unknownFamilyName = "User"
)

// Adapter implements sources.Source for the Learning Management System.
// The LMS is a secondary signal: it contributes users and course shells only,
// never classes or enrollments.
type Adapter struct {
	client *sources.Client
}

// NewAdapter creates an LMS adapter reading through client.
func NewAdapter(client *sources.Client) *Adapter {
	return &Adapter{client: client}
}

// Name returns the unique name of this source.
func (a *Adapter) Name() string {
	return Name
}

// Fetch retrieves users and courses concurrently.
func (a *Adapter) Fetch(ctx context.Context) (Records, error) {
	var rec Records
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.client.FetchRecords(gctx, EndpointUsers, &rec.Users)
	})
	g.Go(func() error {
		return a.client.FetchRecords(gctx, EndpointCourses, &rec.Courses)
	})

	if err := g.Wait(); err != nil {
		return Records{}, err
	}

	if err := sources.ValidateRecords(Name, EndpointUsers, rec.Users); err != nil {
		return Records{}, err
	}
	if err := sources.ValidateRecords(Name, EndpointCourses, rec.Courses); err != nil {
		return Records{}, err
	}
	return rec, nil
}

// Transform maps LMS records into canonical users and courses.
func (a *Adapter) Transform(rec Records, _ time.Time) roster.Entities {
	return roster.Entities{
		Users:   TransformUsers(rec.Users),
		Courses: TransformCourses(rec.Courses),
	}
}

// TransformUsers maps LMS accounts. "instructor" becomes a teacher; every
// other role, including none, becomes a student.
func TransformUsers(in []User) []roster.User {
	out := make([]roster.User, 0, len(in))
	for _, u := range in {
		given, family := SplitName(u.FullName)
		out = append(out, roster.User{
			Base:            roster.Base{SourcedID: roster.LMSUserID(u.Username), Status: roster.StatusActive},
			Username:        u.Username,
			EnabledUser:     true,
			GivenName:       given,
			FamilyName:      family,
			Role:            role(u.Role),
			Identifier:      u.Username,
			Email:           u.Email,
			AgentSourcedIDs: []string{},
		})
	}
	return out
}

func role(r string) roster.Role {
	if strings.EqualFold(r, "instructor") {
		return roster.RoleTeacher
	}
	return roster.RoleStudent
}

// SplitName splits a full name on its first space. Without a space the family
// name is "User"; without a name at all the given name is "Unknown".
func SplitName(full string) (given, family string) {
	if full == "" {
		return unknownGivenName, unknownFamilyName
	}
	given, family, found := strings.Cut(full, " ")
	if !found {
		return given, unknownFamilyName
	}
	return given, family
}

// TransformCourses maps LMS course shells. The course code is the external SIS
// course id when the LMS knows it, else the LMS course id.
func TransformCourses(in []Course) []roster.Course {
	out := make([]roster.Course, 0, len(in))
	for _, c := range in {
		code := c.ExternalSISCourseID
		if code == "" {
			code = c.CourseID
		}
		out = append(out, roster.Course{
			Base: roster.Base{
				SourcedID: roster.LMSCourseID(c.CourseID),
				Status:    roster.StatusActive,
				Metadata:  roster.Metadata{roster.MetaLMSSpecificID: c.CourseID},
			},
			Title:               c.CourseName,
			CourseCode:          code,
			SchoolYearSourcedID: roster.DefaultSchoolYearID,
		})
	}
	return out
}

package sis_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roster-hub/core/roster"
	"roster-hub/core/sources"
	"roster-hub/core/sources/sample"
	"roster-hub/core/sources/sis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var passTime = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func sisServer(t *testing.T, override map[string]string) *httptest.Server {
	payloads := map[string]any{
		"/orgs":     sample.SISOrgs(),
		"/students": sample.SISStudents(),
		"/teachers": sample.SISTeachers(),
		"/courses":  sample.SISCourses(),
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if body, ok := override[r.URL.Path]; ok {
			if body == "" {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(body))
			return
		}
		payload, ok := payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAdapter_Fetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := sisServer(t, nil)
		adapter := sis.NewAdapter(sources.NewClient(sis.Name, srv.URL, time.Second))

		rec, err := adapter.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sample.SIS(), rec)
	})

	t.Run("Unavailable", func(t *testing.T) {
		srv := sisServer(t, map[string]string{"/teachers": ""})
		adapter := sis.NewAdapter(sources.NewClient(sis.Name, srv.URL, time.Second))

		_, err := adapter.Fetch(context.Background())
		assert.ErrorIs(t, err, sources.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "teachers")
	})

	t.Run("MissingKeyField", func(t *testing.T) {
		srv := sisServer(t, map[string]string{"/orgs": `[{"org_name":"Nameless"}]`})
		adapter := sis.NewAdapter(sources.NewClient(sis.Name, srv.URL, time.Second))

		_, err := adapter.Fetch(context.Background())
		assert.ErrorIs(t, err, sources.ErrMalformedPayload)
		assert.ErrorContains(t, err, "record 0: missing org_id")
	})

	t.Run("EnrollmentWithoutClass", func(t *testing.T) {
		srv := sisServer(t, map[string]string{
			"/students": `[{"sis_student_id":"S1","enrollments":[{"class_id":"MATH5A"},{"section":"001"}]}]`,
		})
		adapter := sis.NewAdapter(sources.NewClient(sis.Name, srv.URL, time.Second))

		_, err := adapter.Fetch(context.Background())
		assert.ErrorIs(t, err, sources.ErrMalformedPayload)
		assert.ErrorContains(t, err, "missing enrollments[1].class_id")
	})

	t.Run("OfferingWithoutSchool", func(t *testing.T) {
		srv := sisServer(t, map[string]string{"/courses": `[{"course_code":"MATH5","course_title":"Math"}]`})
		adapter := sis.NewAdapter(sources.NewClient(sis.Name, srv.URL, time.Second))

		_, err := adapter.Fetch(context.Background())
		assert.ErrorIs(t, err, sources.ErrMalformedPayload)
		assert.ErrorContains(t, err, "missing school_id")
	})
}

func TestTransformOrgs(t *testing.T) {
	orgs := sis.TransformOrgs([]sis.Org{
		{OrgID: "DIST01", OrgName: "District", OrgType: "district"},
		{OrgID: "SCH001", OrgName: "School", OrgType: "school", ParentOrgID: "DIST01"},
		{OrgID: "X1", OrgName: "Odd", OrgType: "campus"},
	})

	require.Len(t, orgs, 3)
	assert.Equal(t, "sis_org_DIST01", orgs[0].SourcedID)
	assert.Equal(t, roster.OrgTypeDistrict, orgs[0].Type)
	assert.Empty(t, orgs[0].ParentSourcedID)
	assert.Equal(t, "sis_org_DIST01", orgs[1].ParentSourcedID)
	assert.Equal(t, roster.OrgTypeSchool, orgs[2].Type)
	assert.Equal(t, "X1", orgs[2].Identifier)
	assert.Equal(t, roster.StatusActive, orgs[2].Status)
}

func TestTransformCourses(t *testing.T) {
	courses, classes := sis.TransformCourses([]sis.CourseOffering{
		{CourseCode: "MATH5A", CourseTitle: "Math - Section A", SchoolID: "SCH001"},
		{CourseCode: "SCI5", CourseTitle: "Science", SchoolID: "SCH001", Section: "002"},
		{CourseCode: "MATH5A", CourseTitle: "Math - Section B", SchoolID: "SCH001", Section: "002"},
	})

	require.Len(t, courses, 2)
	assert.Equal(t, "sis_course_MATH5A", courses[0].SourcedID)
	assert.Equal(t, "Math", courses[0].Title)
	assert.Equal(t, "sis_org_SCH001", courses[0].OrgSourcedID)
	assert.Equal(t, roster.DefaultSchoolYearID, courses[0].SchoolYearSourcedID)
	assert.Equal(t, "sis_course_SCI5", courses[1].SourcedID)
	assert.Equal(t, "Science", courses[1].Title)

	require.Len(t, classes, 3)
	assert.Equal(t, "sis_class_MATH5A_001", classes[0].SourcedID)
	assert.Equal(t, "MATH5A-001", classes[0].ClassCode)
	assert.Equal(t, "Math - Section A", classes[0].Title)
	assert.Equal(t, "sis_class_MATH5A_002", classes[1].SourcedID)
	assert.Equal(t, "sis_class_SCI5_002", classes[2].SourcedID)
	for _, c := range classes {
		assert.Equal(t, roster.ClassTypeScheduled, c.ClassType)
		assert.Equal(t, []string{roster.DefaultTermID}, c.TermSourcedIDs)
	}
}

func TestTransformCourses_RepeatedCodeTakesLastRow(t *testing.T) {
	courses, classes := sis.TransformCourses([]sis.CourseOffering{
		{CourseCode: "ART5", CourseTitle: "Art Studio - Section A", SchoolID: "SCH001"},
		{CourseCode: "MUS5", CourseTitle: "Music", SchoolID: "SCH001"},
		{CourseCode: "ART5", CourseTitle: "Visual Arts - Section B", SchoolID: "SCH002", Section: "002"},
	})

	require.Len(t, courses, 2)
	assert.Equal(t, "sis_course_ART5", courses[0].SourcedID)
	assert.Equal(t, "Visual Arts", courses[0].Title)
	assert.Equal(t, "sis_org_SCH002", courses[0].OrgSourcedID)
	assert.Equal(t, "sis_course_MUS5", courses[1].SourcedID)

	require.Len(t, classes, 3)
	assert.Equal(t, "sis_class_ART5_001", classes[0].SourcedID)
	assert.Equal(t, "sis_org_SCH001", classes[0].SchoolSourcedID)
	assert.Equal(t, "sis_class_ART5_002", classes[1].SourcedID)
	assert.Equal(t, "sis_org_SCH002", classes[1].SchoolSourcedID)
	assert.Equal(t, "sis_class_MUS5_001", classes[2].SourcedID)
}

func TestTransformUsers(t *testing.T) {
	users, enrollments := sis.TransformUsers(sample.SISStudents(), sample.SISTeachers(), sample.SISCourses())

	require.Len(t, users, 4)
	alice := users[0]
	assert.Equal(t, "sis_user_student_S1001", alice.SourcedID)
	assert.Equal(t, "awonderland", alice.Username)
	assert.Equal(t, roster.RoleStudent, alice.Role)
	assert.Equal(t, []string{"sis_org_SCH001"}, alice.AgentSourcedIDs)
	assert.Equal(t, []string{"5"}, alice.Grades)
	assert.Equal(t, "alice.w@example.edu", alice.Email)

	sarah := users[2]
	assert.Equal(t, "sis_user_teacher_T201", sarah.SourcedID)
	assert.Equal(t, "sconnor", sarah.Username)
	assert.Equal(t, roster.RoleTeacher, sarah.Role)
	assert.Nil(t, sarah.Grades)

	require.Len(t, enrollments, 7)
	assert.Equal(t, "sis_enr_stu_S1001_MATH5A_001", enrollments[0].SourcedID)
	assert.Equal(t, "sis_class_MATH5A_001", enrollments[0].ClassSourcedID)
	assert.True(t, enrollments[0].Primary)
	assert.Equal(t, "sis_enr_tea_T202_SCI5_002", enrollments[6].SourcedID)
	assert.Equal(t, roster.RoleTeacher, enrollments[6].Role)
	assert.True(t, enrollments[6].Primary)
}

func TestTransformUsers_UnresolvedSchool(t *testing.T) {
	students := []sis.Student{{
		StudentID: "S9", FirstName: "Eve", LastName: "Nowhere",
		Enrollments: []sis.ClassRef{{ClassID: "UNKNOWN", Section: "001"}, {ClassID: "MATH5A", Section: "001"}},
	}}
	teachers := []sis.Teacher{{
		TeacherID: "T9", FirstName: "Tom", LastName: "Helper",
		AssignedClasses: []sis.ClassRef{{ClassID: "MATH5A", Section: "001", Role: "secondary"}},
	}}

	users, enrollments := sis.TransformUsers(students, teachers, sample.SISCourses())

	require.Len(t, users, 2)
	assert.Empty(t, users[0].AgentSourcedIDs)
	assert.NotNil(t, users[0].AgentSourcedIDs)

	require.Len(t, enrollments, 1)
	assert.Equal(t, "sis_user_teacher_T9", enrollments[0].UserSourcedID)
	assert.False(t, enrollments[0].Primary)
}

func TestUsername(t *testing.T) {
	assert.Equal(t, "awonderland", sis.Username("Alice", "Wonderland"))
	assert.Equal(t, "édupont", sis.Username("Émile", "Dupont"))
	assert.Equal(t, "solo", sis.Username("", "Solo"))
}

func TestDefaultSessions(t *testing.T) {
	sessions := sis.DefaultSessions(passTime)

	require.Len(t, sessions, 2)
	assert.Equal(t, roster.DefaultSchoolYearID, sessions[0].SourcedID)
	assert.Equal(t, "Academic Year 2023-2024", sessions[0].Title)
	assert.Equal(t, "2023-08-15", sessions[0].StartDate)
	assert.Equal(t, "2024-06-15", sessions[0].EndDate)
	assert.Equal(t, roster.SessionTypeSchoolYear, sessions[0].Type)
	assert.Equal(t, "2023", sessions[0].SchoolYear)

	assert.Equal(t, roster.DefaultTermID, sessions[1].SourcedID)
	assert.Equal(t, roster.DefaultSchoolYearID, sessions[1].ParentSourcedID)
	assert.Equal(t, "2023-12-20", sessions[1].EndDate)
	assert.True(t, strings.HasPrefix(sessions[1].Title, "Fall Semester"))
}

func TestAdapter_TransformSample(t *testing.T) {
	adapter := sis.NewAdapter(nil)
	entities := adapter.Transform(sample.SIS(), passTime)

	assert.Len(t, entities.Orgs, 2)
	assert.Len(t, entities.Users, 4)
	assert.Len(t, entities.Courses, 3)
	assert.Len(t, entities.Classes, 3)
	assert.Len(t, entities.Enrollments, 7)
	assert.Len(t, entities.AcademicSessions, 2)

	snap := roster.Snapshot{Entities: entities}
	assert.Empty(t, snap.Validate())
}

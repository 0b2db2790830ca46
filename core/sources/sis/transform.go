package sis

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"roster-hub/core/roster"
)

// sectionMarker separates the general course title from section details.
const sectionMarker = " - Section"

// Transform maps SIS records into canonical entities.
func (a *Adapter) Transform(rec Records, passTime time.Time) roster.Entities {
	courses, classes := TransformCourses(rec.Courses)
	users, enrollments := TransformUsers(rec.Students, rec.Teachers, rec.Courses)
	return roster.Entities{
		Orgs:             TransformOrgs(rec.Orgs),
		Users:            users,
		Courses:          courses,
		Classes:          classes,
		Enrollments:      enrollments,
		AcademicSessions: DefaultSessions(passTime),
	}
}

func active(id string) roster.Base {
	return roster.Base{SourcedID: id, Status: roster.StatusActive}
}

// TransformOrgs maps SIS orgs. Unrecognized org types become schools.
func TransformOrgs(in []Org) []roster.Org {
	out := make([]roster.Org, 0, len(in))
	for _, o := range in {
		org := roster.Org{
			Base:       active(roster.SISOrgID(o.OrgID)),
			Name:       o.OrgName,
			Type:       orgType(o.OrgType),
			Identifier: o.OrgID,
		}
		if o.ParentOrgID != "" {
			org.ParentSourcedID = roster.SISOrgID(o.ParentOrgID)
		}
		out = append(out, org)
	}
	return out
}

func orgType(t string) roster.OrgType {
	if t == "district" {
		return roster.OrgTypeDistrict
	}
	return roster.OrgTypeSchool
}

// TransformCourses builds one Course per distinct course code and one Class
// per offering row. Courses keep the order in which codes first appear; when
// a code repeats, the last row supplies the course title and school.
func TransformCourses(in []CourseOffering) ([]roster.Course, []roster.Class) {
	var order []string
	byCode := make(map[string]CourseOffering)
	for _, c := range in {
		if _, seen := byCode[c.CourseCode]; !seen {
			order = append(order, c.CourseCode)
		}
		byCode[c.CourseCode] = c
	}

	courses := make([]roster.Course, 0, len(order))
	classes := make([]roster.Class, 0, len(in))
	for _, code := range order {
		rep := byCode[code]
		courseID := roster.SISCourseID(code)
		title, _, _ := strings.Cut(rep.CourseTitle, sectionMarker)

		courses = append(courses, roster.Course{
			Base:                active(courseID),
			Title:               title,
			CourseCode:          code,
			OrgSourcedID:        roster.SISOrgID(rep.SchoolID),
			SchoolYearSourcedID: roster.DefaultSchoolYearID,
		})

		for _, offering := range in {
			if offering.CourseCode != code {
				continue
			}
			section := sectionOrDefault(offering.Section)
			classes = append(classes, roster.Class{
				Base:            active(roster.SISClassID(code, section)),
				Title:           offering.CourseTitle,
				ClassCode:       roster.SISClassCode(code, section),
				ClassType:       roster.ClassTypeScheduled,
				CourseSourcedID: courseID,
				SchoolSourcedID: roster.SISOrgID(offering.SchoolID),
				TermSourcedIDs:  []string{roster.DefaultTermID},
			})
		}
	}
	return courses, classes
}

// TransformUsers maps students then teachers, emitting each subject's
// enrollments right after the subject. A subject's school is resolved from its
// first class reference; enrollments are dropped when it cannot be resolved.
func TransformUsers(students []Student, teachers []Teacher, offerings []CourseOffering) ([]roster.User, []roster.Enrollment) {
	users := make([]roster.User, 0, len(students)+len(teachers))
	var enrollments []roster.Enrollment

	for _, s := range students {
		school := resolveSchool(s.Enrollments, offerings)
		user := roster.User{
			Base:            active(roster.SISStudentID(s.StudentID)),
			Username:        Username(s.FirstName, s.LastName),
			EnabledUser:     true,
			GivenName:       s.FirstName,
			FamilyName:      s.LastName,
			Role:            roster.RoleStudent,
			Identifier:      s.StudentID,
			Email:           s.Email,
			AgentSourcedIDs: agents(school),
		}
		if s.GradeLevel != "" {
			user.Grades = []string{s.GradeLevel}
		}
		users = append(users, user)

		if school == "" {
			continue
		}
		for _, ref := range s.Enrollments {
			section := sectionOrDefault(ref.Section)
			enrollments = append(enrollments, roster.Enrollment{
				Base:            active(roster.SISStudentEnrollmentID(s.StudentID, ref.ClassID, section)),
				UserSourcedID:   user.SourcedID,
				ClassSourcedID:  roster.SISClassID(ref.ClassID, section),
				SchoolSourcedID: school,
				Role:            roster.RoleStudent,
				Primary:         true,
			})
		}
	}

	for _, t := range teachers {
		school := resolveSchool(t.AssignedClasses, offerings)
		user := roster.User{
			Base:            active(roster.SISTeacherID(t.TeacherID)),
			Username:        Username(t.FirstName, t.LastName),
			EnabledUser:     true,
			GivenName:       t.FirstName,
			FamilyName:      t.LastName,
			Role:            roster.RoleTeacher,
			Identifier:      t.TeacherID,
			Email:           t.Email,
			AgentSourcedIDs: agents(school),
		}
		users = append(users, user)

		if school == "" {
			continue
		}
		for _, ref := range t.AssignedClasses {
			section := sectionOrDefault(ref.Section)
			enrollments = append(enrollments, roster.Enrollment{
				Base:            active(roster.SISTeacherEnrollmentID(t.TeacherID, ref.ClassID, section)),
				UserSourcedID:   user.SourcedID,
				ClassSourcedID:  roster.SISClassID(ref.ClassID, section),
				SchoolSourcedID: school,
				Role:            roster.RoleTeacher,
				Primary:         strings.EqualFold(ref.Role, "primary"),
			})
		}
	}

	return users, enrollments
}

// resolveSchool returns the org sourcedId of the school offering the first
// referenced class, or "" when there is none.
func resolveSchool(refs []ClassRef, offerings []CourseOffering) string {
	if len(refs) == 0 {
		return ""
	}
	first := refs[0].ClassID
	for _, o := range offerings {
		if o.CourseCode == first {
			return roster.SISOrgID(o.SchoolID)
		}
	}
	return ""
}

func agents(school string) []string {
	if school == "" {
		return []string{}
	}
	return []string{school}
}

func sectionOrDefault(section string) string {
	if section == "" {
		return roster.DefaultSection
	}
	return section
}

// Username synthesizes a login from the lowercased first initial and family name.
func Username(first, last string) string {
	initial := ""
	if r, size := utf8.DecodeRuneInString(first); size > 0 {
		initial = strings.ToLower(string(r))
	}
	return initial + strings.ToLower(last)
}

// DefaultSessions synthesizes the school year and fall semester for the
// calendar year of passTime.
func DefaultSessions(passTime time.Time) []roster.AcademicSession {
	year := passTime.UTC().Year()
	prev := year - 1
	return []roster.AcademicSession{
		{
			Base:       active(roster.DefaultSchoolYearID),
			Title:      fmt.Sprintf("Academic Year %d-%d", prev, year),
			StartDate:  fmt.Sprintf("%d-08-15", prev),
			EndDate:    fmt.Sprintf("%d-06-15", year),
			Type:       roster.SessionTypeSchoolYear,
			SchoolYear: fmt.Sprint(prev),
		},
		{
			Base:            active(roster.DefaultTermID),
			Title:           fmt.Sprintf("Fall Semester %d", prev),
			StartDate:       fmt.Sprintf("%d-08-15", prev),
			EndDate:         fmt.Sprintf("%d-12-20", prev),
			Type:            roster.SessionTypeSemester,
			ParentSourcedID: roster.DefaultSchoolYearID,
			SchoolYear:      fmt.Sprint(prev),
		},
	}
}

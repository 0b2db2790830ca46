// Package sample holds the reference SIS and LMS dataset. It backs the mock
// source endpoints and the scenario tests.
package sample

import (
	"roster-hub/core/sources/lms"
	"roster-hub/core/sources/sis"
)

// SISOrgs returns the sample district and school.
func SISOrgs() []sis.Org {
	return []sis.Org{
		{OrgID: "DIST01", OrgName: "Main Street District", OrgType: "district"},
		{OrgID: "SCH001", OrgName: "Main Street Elementary", OrgType: "school", ParentOrgID: "DIST01"},
	}
}

// SISStudents returns Alice and Bob.
func SISStudents() []sis.Student {
	return []sis.Student{
		{
			StudentID:         "S1001",
			FirstName:         "Alice",
			LastName:          "Wonderland",
			GradeLevel:        "5",
			DOB:               "2014-07-22",
			Email:             "alice.w@example.edu",
			HomeroomTeacherID: "T201",
			Enrollments: []sis.ClassRef{
				{ClassID: "MATH5A", Section: "001"},
				{ClassID: "ELA5A", Section: "001"},
			},
		},
		{
			StudentID:         "S1002",
			FirstName:         "Bob",
			LastName:          "TheBuilder",
			GradeLevel:        "5",
			DOB:               "2014-03-15",
			Email:             "bob.b@example.edu",
			HomeroomTeacherID: "T201",
			Enrollments: []sis.ClassRef{
				{ClassID: "MATH5A", Section: "001"},
				{ClassID: "SCI5", Section: "002"},
			},
		},
	}
}

// SISTeachers returns Sarah Connor and John Smith.
func SISTeachers() []sis.Teacher {
	return []sis.Teacher{
		{
			TeacherID:  "T201",
			FirstName:  "Sarah",
			LastName:   "Connor",
			Email:      "sconnor@example.edu",
			Department: "Elementary",
			AssignedClasses: []sis.ClassRef{
				{ClassID: "MATH5A", Section: "001", Role: "Primary"},
				{ClassID: "ELA5A", Section: "001", Role: "Primary"},
			},
		},
		{
			TeacherID:  "T202",
			FirstName:  "John",
			LastName:   "Smith",
			Email:      "jsmith@example.edu",
			Department: "Science",
			AssignedClasses: []sis.ClassRef{
				{ClassID: "SCI5", Section: "002", Role: "Primary"},
			},
		},
	}
}

// SISCourses returns the three course offerings taught at SCH001.
func SISCourses() []sis.CourseOffering {
	return []sis.CourseOffering{
		{CourseCode: "MATH5A", CourseTitle: "5th Grade Mathematics - Section A", SchoolID: "SCH001", Section: "001"},
		{CourseCode: "ELA5A", CourseTitle: "5th Grade English Language Arts - Section A", SchoolID: "SCH001", Section: "001"},
		{CourseCode: "SCI5", CourseTitle: "5th Grade Science", SchoolID: "SCH001", Section: "002"},
	}
}

// SIS returns the full SIS record set.
func SIS() sis.Records {
	return sis.Records{
		Orgs:     SISOrgs(),
		Students: SISStudents(),
		Teachers: SISTeachers(),
		Courses:  SISCourses(),
	}
}

// LMSUsers returns the LMS accounts matching the SIS people by email.
func LMSUsers() []lms.User {
	return []lms.User{
		{Username: "alice_w_student", FullName: "Alice Wonderland", Role: "student", Email: "alice.w@example.edu"},
		{Username: "bob_b_student", FullName: "Bob TheBuilder", Role: "student", Email: "bob.b@example.edu"},
		{Username: "sconnor_teacher", FullName: "Sarah Connor", Role: "instructor", Email: "sconnor@example.edu"},
		{Username: "jsmith_teacher", FullName: "John Smith", Role: "instructor", Email: "jsmith@example.edu"},
	}
}

// LMSCourses returns the LMS course shells.
func LMSCourses() []lms.Course {
	return []lms.Course{
		{
			CourseID:             "LMS_M5A_001",
			CourseName:           "Mathematics Grade 5 - Morning Block",
			TeacherUsername:      "sconnor_teacher",
			ExternalSISCourseID:  "MATH5A",
			EnrolledStudentNames: []string{"alice_w_student", "bob_b_student"},
		},
		{
			CourseID:             "LMS_ELA5A_001",
			CourseName:           "ELA Grade 5 - Morning Block",
			TeacherUsername:      "sconnor_teacher",
			ExternalSISCourseID:  "ELA5A",
			EnrolledStudentNames: []string{"alice_w_student"},
		},
		{
			CourseID:             "LMS_SCI5_002",
			CourseName:           "Science 5 - Afternoon",
			TeacherUsername:      "jsmith_teacher",
			ExternalSISCourseID:  "SCI5",
			EnrolledStudentNames: []string{"bob_b_student"},
		},
	}
}

// LMS returns the full LMS record set.
func LMS() lms.Records {
	return lms.Records{Users: LMSUsers(), Courses: LMSCourses()}
}

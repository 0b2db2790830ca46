package sis

// Org is a native SIS organization record.
type Org struct {
	OrgID       string `json:"org_id" validate:"required"`
	OrgName     string `json:"org_name"`
	OrgType     string `json:"org_type"`
	ParentOrgID string `json:"parent_org_id,omitempty"`
}

// ClassRef points from a student or teacher to one section of an offering.
type ClassRef struct {
	ClassID string `json:"class_id" validate:"required"`
	Section string `json:"section"`
	// Role is only set on teacher assignments ("Primary", "Secondary", ...).
	Role string `json:"role,omitempty"`
}

// Student is a native SIS student record.
type Student struct {
	StudentID         string     `json:"sis_student_id" validate:"required"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	GradeLevel        string     `json:"grade_level,omitempty"`
	DOB               string     `json:"dob,omitempty"`
	Email             string     `json:"email_address,omitempty"`
	HomeroomTeacherID string     `json:"homeroom_teacher_id,omitempty"`
	Enrollments       []ClassRef `json:"enrollments" validate:"dive"`
}

// Teacher is a native SIS staff record.
type Teacher struct {
	TeacherID       string     `json:"sis_teacher_id" validate:"required"`
	FirstName       string     `json:"staff_first_name"`
	LastName        string     `json:"staff_last_name"`
	Email           string     `json:"primary_email,omitempty"`
	Department      string     `json:"department,omitempty"`
	AssignedClasses []ClassRef `json:"assigned_classes" validate:"dive"`
}

// CourseOffering is one row of the SIS course offering list. Several rows may
// share a course code, one per section.
type CourseOffering struct {
	CourseCode  string `json:"course_code" validate:"required"`
	CourseTitle string `json:"course_title"`
	SchoolID    string `json:"school_id" validate:"required"`
	Section     string `json:"section,omitempty"`
}

// Records is everything fetched from the SIS in one pass.
type Records struct {
	Orgs     []Org
	Students []Student
	Teachers []Teacher
	Courses  []CourseOffering
}

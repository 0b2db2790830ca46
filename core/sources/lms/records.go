package lms

// User is a native LMS account.
type User struct {
	Username string `json:"lms_username" validate:"required"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Course is a native LMS course shell.
type Course struct {
	CourseID             string   `json:"lms_course_id" validate:"required"`
	CourseName           string   `json:"course_name"`
	TeacherUsername      string   `json:"lms_teacher_username,omitempty"`
	ExternalSISCourseID  string   `json:"external_sis_course_id,omitempty"`
	EnrolledStudentNames []string `json:"student_usernames_enrolled,omitempty"`
}

// Records is everything fetched from the LMS in one pass.
type Records struct {
	Users   []User
	Courses []Course
}

package roster

// Identifier namespaces. Every sourcedId produced by a source adapter is built
// from one of these prefixes; cross-source joins depend on them being stable.
const (
	PrefixSISOrg           = "sis_org_"
	PrefixSISStudent       = "sis_user_student_"
	PrefixSISTeacher       = "sis_user_teacher_"
	PrefixSISCourse        = "sis_course_"
	PrefixSISClass         = "sis_class_"
	PrefixSISStudentEnroll = "sis_enr_stu_"
	PrefixSISTeacherEnroll = "sis_enr_tea_"
	PrefixLMSUser          = "lms_user_"
	PrefixLMSCourse        = "lms_course_"
)

// Synthesized academic sessions. No source system provides sessions, so a
// fixed school year and fall semester are generated on every pass.
const (
	DefaultSchoolYearID = "default_ay_2023-2024"
	DefaultTermID       = "default_term_fall2023"
)

// DefaultSection is used when a course offering carries no section.
const DefaultSection = "001"

// Metadata keys written by the reconciler onto matched users.
const (
	MetaLMSUsername  = "lms_username"
	MetaLMSSourcedID = "lms_sourcedId"
	// MetaLMSSpecificID holds the raw LMS course id on LMS-derived courses.
	MetaLMSSpecificID = "lms_specific_id"
)

// SISOrgID returns the sourcedId of the SIS org with the given native id.
func SISOrgID(orgID string) string {
	return PrefixSISOrg + orgID
}

// SISStudentID returns the sourcedId of a SIS student.
func SISStudentID(studentID string) string {
	return PrefixSISStudent + studentID
}

// SISTeacherID returns the sourcedId of a SIS teacher.
func SISTeacherID(teacherID string) string {
	return PrefixSISTeacher + teacherID
}

// SISCourseID returns the sourcedId of the course built from a course code.
func SISCourseID(courseCode string) string {
	return PrefixSISCourse + courseCode
}

// SISClassID returns the sourcedId of one section of a course offering.
func SISClassID(classID, section string) string {
	return PrefixSISClass + classID + "_" + section
}

// SISClassCode returns the human readable class code of a section.
func SISClassCode(classID, section string) string {
	return classID + "-" + section
}

// SISStudentEnrollmentID returns the sourcedId of a student enrollment.
func SISStudentEnrollmentID(studentID, classID, section string) string {
	return PrefixSISStudentEnroll + studentID + "_" + classID + "_" + section
}

// SISTeacherEnrollmentID returns the sourcedId of a teacher assignment.
func SISTeacherEnrollmentID(teacherID, classID, section string) string {
	return PrefixSISTeacherEnroll + teacherID + "_" + classID + "_" + section
}

// LMSUserID returns the sourcedId of an LMS user.
func LMSUserID(username string) string {
	return PrefixLMSUser + username
}

// LMSCourseID returns the sourcedId of an LMS course.
func LMSCourseID(courseID string) string {
	return PrefixLMSCourse + courseID
}

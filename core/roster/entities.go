package roster

// Metadata carries provenance annotations such as cross-source links.
// Values are scalars or strings.
type Metadata map[string]any

// Base holds the fields shared by every roster entity.
type Base struct {
	SourcedID        string    `json:"sourcedId"`
	Status           Status    `json:"status"`
	DateLastModified Timestamp `json:"dateLastModified"`
	Metadata         Metadata  `json:"metadata,omitempty"`
}

// ID returns the entity's sourcedId.
func (b Base) ID() string {
	return b.SourcedID
}

// Org is a district, school or other organizational unit.
type Org struct {
	Base
	Name            string  `json:"name"`
	Type            OrgType `json:"type"`
	Identifier      string  `json:"identifier,omitempty"`
	ParentSourcedID string  `json:"parentSourcedId,omitempty"`
}

// User is a person known to the roster.
type User struct {
	Base
	Username        string   `json:"username"`
	EnabledUser     bool     `json:"enabledUser"`
	GivenName       string   `json:"givenName"`
	FamilyName      string   `json:"familyName"`
	MiddleName      string   `json:"middleName,omitempty"`
	Role            Role     `json:"role"`
	Identifier      string   `json:"identifier,omitempty"`
	Email           string   `json:"email,omitempty"`
	SMS             string   `json:"sms,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	AgentSourcedIDs []string `json:"agentSourcedIds"`
	Grades          []string `json:"grades,omitempty"`
}

// Course is a general course definition.
type Course struct {
	Base
	Title               string   `json:"title"`
	CourseCode          string   `json:"courseCode,omitempty"`
	SchoolYearSourcedID string   `json:"schoolYearSourcedId,omitempty"`
	OrgSourcedID        string   `json:"orgSourcedId,omitempty"`
	Grades              []string `json:"grades,omitempty"`
	Subjects            []string `json:"subjects,omitempty"`
	SubjectCodes        []string `json:"subjectCodes,omitempty"`
}

// Class is a concrete section of a course.
type Class struct {
	Base
	Title           string    `json:"title"`
	ClassCode       string    `json:"classCode,omitempty"`
	ClassType       ClassType `json:"classType"`
	Location        string    `json:"location,omitempty"`
	Grades          []string  `json:"grades,omitempty"`
	Subjects        []string  `json:"subjects,omitempty"`
	CourseSourcedID string    `json:"courseSourcedId"`
	SchoolSourcedID string    `json:"schoolSourcedId"`
	TermSourcedIDs  []string  `json:"termSourcedIds"`
	Periods         []string  `json:"periods,omitempty"`
}

// Enrollment joins a user to a class.
type Enrollment struct {
	Base
	UserSourcedID   string `json:"userSourcedId"`
	ClassSourcedID  string `json:"classSourcedId"`
	SchoolSourcedID string `json:"schoolSourcedId"`
	Role            Role   `json:"role"`
	Primary         bool   `json:"primary"`
	BeginDate       string `json:"beginDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
}

// AcademicSession is a school year, semester, term or grading period.
type AcademicSession struct {
	Base
	Title           string      `json:"title"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	Type            SessionType `json:"type"`
	ParentSourcedID string      `json:"parentSourcedId,omitempty"`
	SchoolYear      string      `json:"schoolYear,omitempty"`
}

// Entities is a set of canonical entities produced by one source adapter.
// Collections a source does not provide stay nil.
type Entities struct {
	Orgs             []Org             `json:"orgs"`
	Users            []User            `json:"users"`
	Courses          []Course          `json:"courses"`
	Classes          []Class           `json:"classes"`
	Enrollments      []Enrollment      `json:"enrollments"`
	AcademicSessions []AcademicSession `json:"academicSessions"`
}

// Count returns the total number of entities across all collections.
func (e Entities) Count() int {
	return len(e.Orgs) + len(e.Users) + len(e.Courses) + len(e.Classes) + len(e.Enrollments) + len(e.AcademicSessions)
}

// Stamp sets dateLastModified on every entity to ts.
func (e *Entities) Stamp(ts Timestamp) {
	for i := range e.Orgs {
		e.Orgs[i].DateLastModified = ts
	}
	for i := range e.Users {
		e.Users[i].DateLastModified = ts
	}
	for i := range e.Courses {
		e.Courses[i].DateLastModified = ts
	}
	for i := range e.Classes {
		e.Classes[i].DateLastModified = ts
	}
	for i := range e.Enrollments {
		e.Enrollments[i].DateLastModified = ts
	}
	for i := range e.AcademicSessions {
		e.AcademicSessions[i].DateLastModified = ts
	}
}

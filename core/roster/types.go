package roster

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a roster entity.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusToBeDeleted Status = "tobedeleted"
)

// Role is the role a user holds, either globally or within an enrollment.
type Role string

const (
	RoleStudent       Role = "student"
	RoleTeacher       Role = "teacher"
	RoleAdministrator Role = "administrator"
	RoleGuardian      Role = "guardian"
	RoleAide          Role = "aide"
	RoleRelative      Role = "relative"
	RoleParent        Role = "parent"
)

// OrgType classifies an organization.
type OrgType string

const (
	OrgTypeDistrict OrgType = "district"
	OrgTypeSchool   OrgType = "school"
	OrgTypeLocal    OrgType = "local"
	OrgTypeState    OrgType = "state"
	OrgTypeNational OrgType = "national"
)

// ClassType classifies a class.
type ClassType string

const (
	ClassTypeHomeroom  ClassType = "homeroom"
	ClassTypeScheduled ClassType = "scheduled"
)

// SessionType classifies an academic session.
type SessionType string

const (
	SessionTypeSchoolYear    SessionType = "schoolYear"
	SessionTypeSemester      SessionType = "semester"
	SessionTypeTerm          SessionType = "term"
	SessionTypeGradingPeriod SessionType = "gradingPeriod"
)

// timestampLayout renders UTC with microsecond precision and a literal Z.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp is a point in time serialized as ISO-8601 UTC with a trailing Z.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// String returns the wire representation.
func (t Timestamp) String() string {
	return t.UTC().Format(timestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the wire layout and
// any RFC 3339 value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

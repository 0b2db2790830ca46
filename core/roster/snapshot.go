package roster

import (
	"fmt"
	"time"
)

// Snapshot is one complete, reconciled set of canonical entities.
// It must not be mutated after it has been published to a cache.
type Snapshot struct {
	Entities
	// CreatedAt is when the reconciliation pass that built this snapshot ran.
	CreatedAt time.Time `json:"-"`
}

// Age returns how long ago the snapshot was created, relative to now.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

// Violation describes a broken snapshot invariant.
type Violation struct {
	Entity    string `json:"entity"`
	SourcedID string `json:"sourcedId"`
	Problem   string `json:"problem"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s", v.Entity, v.SourcedID, v.Problem)
}

// Validate checks id uniqueness, reference resolution and role consistency.
// It returns every violation found, in collection order.
func (s *Snapshot) Validate() []Violation {
	var out []Violation
	add := func(entity, id, format string, args ...any) {
		out = append(out, Violation{Entity: entity, SourcedID: id, Problem: fmt.Sprintf(format, args...)})
	}

	orgs := make(map[string]struct{}, len(s.Orgs))
	for _, o := range s.Orgs {
		if _, dup := orgs[o.SourcedID]; dup {
			add("org", o.SourcedID, "duplicate sourcedId")
		}
		orgs[o.SourcedID] = struct{}{}
	}
	sessions := make(map[string]struct{}, len(s.AcademicSessions))
	for _, a := range s.AcademicSessions {
		if _, dup := sessions[a.SourcedID]; dup {
			add("academicSession", a.SourcedID, "duplicate sourcedId")
		}
		sessions[a.SourcedID] = struct{}{}
	}
	users := make(map[string]Role, len(s.Users))
	for _, u := range s.Users {
		if _, dup := users[u.SourcedID]; dup {
			add("user", u.SourcedID, "duplicate sourcedId")
		}
		users[u.SourcedID] = u.Role
	}
	courses := make(map[string]struct{}, len(s.Courses))
	for _, c := range s.Courses {
		if _, dup := courses[c.SourcedID]; dup {
			add("course", c.SourcedID, "duplicate sourcedId")
		}
		courses[c.SourcedID] = struct{}{}
	}
	classes := make(map[string]struct{}, len(s.Classes))
	for _, c := range s.Classes {
		if _, dup := classes[c.SourcedID]; dup {
			add("class", c.SourcedID, "duplicate sourcedId")
		}
		classes[c.SourcedID] = struct{}{}
	}

	for _, o := range s.Orgs {
		if o.ParentSourcedID != "" {
			if _, ok := orgs[o.ParentSourcedID]; !ok {
				add("org", o.SourcedID, "parentSourcedId %q does not resolve", o.ParentSourcedID)
			}
		}
	}
	for _, a := range s.AcademicSessions {
		if a.ParentSourcedID != "" {
			if _, ok := sessions[a.ParentSourcedID]; !ok {
				add("academicSession", a.SourcedID, "parentSourcedId %q does not resolve", a.ParentSourcedID)
			}
		}
	}
	for _, u := range s.Users {
		for _, id := range u.AgentSourcedIDs {
			if _, ok := orgs[id]; !ok {
				add("user", u.SourcedID, "agentSourcedId %q does not resolve", id)
			}
		}
	}
	for _, c := range s.Courses {
		if c.OrgSourcedID != "" {
			if _, ok := orgs[c.OrgSourcedID]; !ok {
				add("course", c.SourcedID, "orgSourcedId %q does not resolve", c.OrgSourcedID)
			}
		}
		if c.SchoolYearSourcedID != "" {
			if _, ok := sessions[c.SchoolYearSourcedID]; !ok {
				add("course", c.SourcedID, "schoolYearSourcedId %q does not resolve", c.SchoolYearSourcedID)
			}
		}
	}
	for _, c := range s.Classes {
		if _, ok := courses[c.CourseSourcedID]; !ok {
			add("class", c.SourcedID, "courseSourcedId %q does not resolve", c.CourseSourcedID)
		}
		if _, ok := orgs[c.SchoolSourcedID]; !ok {
			add("class", c.SourcedID, "schoolSourcedId %q does not resolve", c.SchoolSourcedID)
		}
		for _, id := range c.TermSourcedIDs {
			if _, ok := sessions[id]; !ok {
				add("class", c.SourcedID, "termSourcedId %q does not resolve", id)
			}
		}
	}

	enrollments := make(map[string]struct{}, len(s.Enrollments))
	for _, e := range s.Enrollments {
		if _, dup := enrollments[e.SourcedID]; dup {
			add("enrollment", e.SourcedID, "duplicate sourcedId")
		}
		enrollments[e.SourcedID] = struct{}{}

		role, ok := users[e.UserSourcedID]
		if !ok {
			add("enrollment", e.SourcedID, "userSourcedId %q does not resolve", e.UserSourcedID)
		} else if role != e.Role {
			add("enrollment", e.SourcedID, "role %q conflicts with user role %q", e.Role, role)
		}
		if _, ok := classes[e.ClassSourcedID]; !ok {
			add("enrollment", e.SourcedID, "classSourcedId %q does not resolve", e.ClassSourcedID)
		}
		if _, ok := orgs[e.SchoolSourcedID]; !ok {
			add("enrollment", e.SourcedID, "schoolSourcedId %q does not resolve", e.SchoolSourcedID)
		}
	}

	return out
}

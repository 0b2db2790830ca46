// Package sis adapts a Student Information System into the canonical roster
// model. The SIS is the authoritative source: orgs, courses, classes,
// enrollments and the base user set all come from it.
//
// The SIS exposes four JSON endpoints (orgs, students, teachers, courses) that
// are fetched concurrently. Course offerings double as the class list: one
// Course per distinct course code, one Class per offering row.
package sis

// Package lms adapts a Learning Management System into the canonical roster
// model. LMS users are only used for identity matching against SIS users; LMS
// courses are normalized but not merged.
package lms

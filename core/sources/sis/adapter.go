package sis

import (
	"context"

	"roster-hub/core/sources"

	"golang.org/x/sync/errgroup"
)

// Name is the source name used in logs and errors.
const Name = "sis"

// Endpoints served by a SIS, relative to its base URL.
const (
	EndpointOrgs     = "orgs"
	EndpointStudents = "students"
	EndpointTeachers = "teachers"
	EndpointCourses  = "courses"
)

// Adapter implements sources.Source for the Student Information System.
type Adapter struct {
	client *sources.Client
}

// NewAdapter creates a SIS adapter reading through client.
func NewAdapter(client *sources.Client) *Adapter {
	return &Adapter{client: client}
}

// Name returns the unique name of this source.
func (a *Adapter) Name() string {
	return Name
}

// Fetch retrieves orgs, students, teachers and course offerings concurrently.
// The first failure cancels the remaining requests.
func (a *Adapter) Fetch(ctx context.Context) (Records, error) {
	var rec Records
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.client.FetchRecords(gctx, EndpointOrgs, &rec.Orgs)
	})
	g.Go(func() error {
		return a.client.FetchRecords(gctx, EndpointStudents, &rec.Students)
	})
	g.Go(func() error {
		return a.client.FetchRecords(gctx, EndpointTeachers, &rec.Teachers)
	})
	g.Go(func() error {
		return a.client.FetchRecords(gctx, EndpointCourses, &rec.Courses)
	})

	if err := g.Wait(); err != nil {
		return Records{}, err
	}
	if err := validate(rec); err != nil {
		return Records{}, err
	}
	return rec, nil
}

// validate rejects records missing the fields the transform keys on.
func validate(rec Records) error {
	if err := sources.ValidateRecords(Name, EndpointOrgs, rec.Orgs); err != nil {
		return err
	}
	if err := sources.ValidateRecords(Name, EndpointStudents, rec.Students); err != nil {
		return err
	}
	if err := sources.ValidateRecords(Name, EndpointTeachers, rec.Teachers); err != nil {
		return err
	}
	return sources.ValidateRecords(Name, EndpointCourses, rec.Courses)
}

package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"roster-hub/core/roster"
	"roster-hub/core/sources"
	"roster-hub/core/sources/lms"
	"roster-hub/core/sources/sample"
	"roster-hub/core/sources/sis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var passTime = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func sampleEntities() (roster.Entities, roster.Entities) {
	primary := sis.NewAdapter(nil).Transform(sample.SIS(), passTime)
	secondary := lms.NewAdapter(nil).Transform(sample.LMS(), passTime)
	return primary, secondary
}

func findUser(t *testing.T, users []roster.User, id string) roster.User {
	t.Helper()
	for _, u := range users {
		if u.SourcedID == id {
			return u
		}
	}
	t.Fatalf("user %s not found", id)
	return roster.User{}
}

func TestReconcile_SampleScenario(t *testing.T) {
	primary, secondary := sampleEntities()

	result := Reconcile(primary, secondary)

	alice := findUser(t, result.Entities.Users, "sis_user_student_S1001")
	assert.Equal(t, "alice_w_student", alice.Metadata[roster.MetaLMSUsername])
	assert.Equal(t, "lms_user_alice_w_student", alice.Metadata[roster.MetaLMSSourcedID])

	sarah := findUser(t, result.Entities.Users, "sis_user_teacher_T201")
	assert.Equal(t, "sconnor_teacher", sarah.Metadata[roster.MetaLMSUsername])

	assert.Equal(t, primary.Orgs, result.Entities.Orgs)
	assert.Equal(t, primary.Courses, result.Entities.Courses)
	assert.Equal(t, primary.Classes, result.Entities.Classes)
	assert.Equal(t, primary.Enrollments, result.Entities.Enrollments)
	assert.Len(t, result.Entities.Users, len(primary.Users))

	assert.Equal(t, Summary{
		PrimaryUsers:     4,
		SecondaryUsers:   4,
		MatchedUsers:     4,
		Orgs:             2,
		Users:            4,
		Courses:          3,
		Classes:          3,
		Enrollments:      7,
		AcademicSessions: 2,
	}, result.Summary)
}

func TestReconcile_EmailMatching(t *testing.T) {
	user := func(id, email string) roster.User {
		return roster.User{Base: roster.Base{SourcedID: id}, Email: email}
	}

	primary := roster.Entities{Users: []roster.User{
		user("p1", "Mixed.Case@Example.edu"),
		user("p2", ""),
		user("p3", "nobody@example.edu"),
	}}
	secondary := roster.Entities{Users: []roster.User{
		{Base: roster.Base{SourcedID: "lms_user_first"}, Username: "first", Email: "mixed.case@example.EDU"},
		{Base: roster.Base{SourcedID: "lms_user_second"}, Username: "second", Email: "MIXED.CASE@EXAMPLE.EDU"},
		{Base: roster.Base{SourcedID: "lms_user_blank"}, Username: "blank"},
		{Base: roster.Base{SourcedID: "lms_user_orphan"}, Username: "orphan", Email: "orphan@example.edu"},
	}}

	result := Reconcile(primary, secondary)

	p1 := findUser(t, result.Entities.Users, "p1")
	assert.Equal(t, "first", p1.Metadata[roster.MetaLMSUsername])
	assert.Nil(t, findUser(t, result.Entities.Users, "p2").Metadata)
	assert.Nil(t, findUser(t, result.Entities.Users, "p3").Metadata)

	assert.Equal(t, 1, result.Summary.MatchedUsers)
	assert.Equal(t, 2, result.Summary.UnmatchedPrimary)
	assert.Equal(t, 3, result.Summary.UnmatchedSecondary)
	assert.Equal(t, 1, result.Summary.DuplicateEmails)
}

func TestReconcile_EmailUnicodeFolding(t *testing.T) {
	primary := roster.Entities{Users: []roster.User{
		{Base: roster.Base{SourcedID: "p1"}, Email: "JÜRGEN.STRASSE@example.de"},
	}}
	secondary := roster.Entities{Users: []roster.User{
		{Base: roster.Base{SourcedID: "lms_user_j"}, Username: "jstrasse", Email: "jürgen.straße@example.de"},
	}}

	result := Reconcile(primary, secondary)
	assert.Equal(t, 1, result.Summary.MatchedUsers)
	assert.Equal(t, "jstrasse", result.Entities.Users[0].Metadata[roster.MetaLMSUsername])
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	primary, secondary := sampleEntities()
	primary.Users[0].Metadata = roster.Metadata{"house": "blue"}

	result := Reconcile(primary, secondary)
	result.Entities.Stamp(roster.NewTimestamp(passTime))

	assert.Equal(t, roster.Metadata{"house": "blue"}, primary.Users[0].Metadata)
	assert.True(t, primary.Orgs[0].DateLastModified.IsZero())
	assert.Equal(t, "blue", result.Entities.Users[0].Metadata["house"])
	assert.Equal(t, "alice_w_student", result.Entities.Users[0].Metadata[roster.MetaLMSUsername])
}

func TestReconcile_Idempotent(t *testing.T) {
	primary, secondary := sampleEntities()

	first := Reconcile(primary, secondary)
	second := Reconcile(primary, secondary)

	assert.Equal(t, first, second)
}

type fakeAdapter struct {
	name     string
	entities roster.Entities
	err      error
}

func (f fakeAdapter) Name() string { return f.name }

func (f fakeAdapter) Load(ctx context.Context, _ time.Time) (roster.Entities, error) {
	if f.err != nil {
		return roster.Entities{}, f.err
	}
	return f.entities, ctx.Err()
}

func TestPipeline_Run(t *testing.T) {
	primary, secondary := sampleEntities()

	t.Run("Success", func(t *testing.T) {
		p := NewPipeline(fakeAdapter{name: "sis", entities: primary}, fakeAdapter{name: "lms", entities: secondary}, nil)

		pass, err := p.Run(context.Background(), passTime)
		require.NoError(t, err)
		assert.Empty(t, pass.Violations)
		assert.Equal(t, passTime, pass.Snapshot.CreatedAt)
		assert.Equal(t, 21, pass.Snapshot.Count())
		for _, o := range pass.Snapshot.Orgs {
			assert.Equal(t, passTime, o.DateLastModified.Time)
		}
		for _, e := range pass.Snapshot.Enrollments {
			assert.Equal(t, passTime, e.DateLastModified.Time)
		}
	})

	t.Run("SourceError", func(t *testing.T) {
		boom := errors.New("boom")
		p := NewPipeline(
			fakeAdapter{name: "sis", entities: primary},
			fakeAdapter{name: "lms", err: boom},
			nil,
		)

		_, err := p.Run(context.Background(), passTime)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "load lms")
	})

	t.Run("SourceUnavailable", func(t *testing.T) {
		p := NewPipeline(
			fakeAdapter{name: "sis", err: sources.ErrSourceUnavailable},
			fakeAdapter{name: "lms", entities: secondary},
			nil,
		)

		_, err := p.Run(context.Background(), passTime)
		assert.ErrorIs(t, err, sources.ErrSourceUnavailable)
	})

	t.Run("ViolationsReported", func(t *testing.T) {
		broken := primary
		broken.Enrollments = append([]roster.Enrollment{}, primary.Enrollments...)
		broken.Enrollments[0].ClassSourcedID = "sis_class_GONE_001"
		p := NewPipeline(fakeAdapter{name: "sis", entities: broken}, fakeAdapter{name: "lms", entities: secondary}, nil)

		pass, err := p.Run(context.Background(), passTime)
		require.NoError(t, err)
		require.Len(t, pass.Violations, 1)
		assert.Equal(t, "enrollment", pass.Violations[0].Entity)
	})
}

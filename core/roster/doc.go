// Package roster defines the canonical roster entity model shared by every
// source adapter, the reconciler and the query engine.
//
// # Entities
//
// Six entity types are supported, all embedding the common Base shape
// (sourcedId, status, dateLastModified, metadata):
//   - Org: districts and schools, forming a tree through parentSourcedId.
//   - User: students, teachers and other roles, affiliated to Orgs.
//   - Course: a general course definition owned by an Org.
//   - Class: a concrete section of a Course taught at a school.
//   - Enrollment: joins a User to a Class with a role.
//   - AcademicSession: school years, semesters and terms.
//
// # Identifiers
//
// Source adapters build sourcedIds through the helpers in ids.go. The prefixes
// ("sis_org_", "lms_user_", ...) are a contract between adapters and the
// reconciler: changing one breaks cross-source joins, so they are kept in a
// single place.
//
// # Snapshot
//
// A Snapshot is one complete, internally consistent set of entities produced by
// a reconciliation pass. Snapshots are immutable once published; Validate
// reports invariant violations without modifying anything.
package roster

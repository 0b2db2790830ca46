package query

import (
	"strconv"
	"strings"

	"roster-hub/core/roster"
	"roster-hub/core/utils"
)

// Op is a comparison operator.
type Op string

// OpEqual is the only operator the filter grammar supports.
const OpEqual Op = "="

// metadataPrefix selects a metadata entry, e.g. "metadata.lms_username".
const metadataPrefix = "metadata."

// Predicate is a parsed filter expression.
type Predicate struct {
	Field string
	Op    Op
	Value string
}

// ParsePredicate parses "field=value". Whitespace around both sides is
// trimmed and surrounding quotes are stripped from the value.
// It reports false for malformed expressions, including any with more than
// one "=".
func ParsePredicate(expr string) (Predicate, bool) {
	if strings.Count(expr, string(OpEqual)) != 1 {
		return Predicate{}, false
	}
	field, value, _ := strings.Cut(expr, string(OpEqual))
	field = strings.TrimSpace(field)
	if field == "" {
		return Predicate{}, false
	}
	value = strings.Trim(strings.TrimSpace(value), `'"`)
	return Predicate{Field: field, Op: OpEqual, Value: value}, true
}

// field reads the string form of one entity attribute. List attributes return
// every element; a predicate matches when any element matches.
type field[T any] struct {
	get  func(T) []string
	fold bool
}

// table is the accessor table of one entity type.
type table[T any] struct {
	fields map[string]field[T]
	base   func(T) roster.Base
}

// matcher resolves p against the table. It returns nil when the field is
// unknown, meaning the filter is ignored.
func (t table[T]) matcher(p Predicate) func(T) bool {
	if key, ok := strings.CutPrefix(p.Field, metadataPrefix); ok && key != "" {
		return func(item T) bool {
			v, ok := t.base(item).Metadata[key]
			return ok && utils.ToString(v) == p.Value
		}
	}

	f, ok := t.fields[p.Field]
	if !ok {
		return nil
	}
	return func(item T) bool {
		for _, v := range f.get(item) {
			if f.fold && strings.EqualFold(v, p.Value) {
				return true
			}
			if !f.fold && v == p.Value {
				return true
			}
		}
		return false
	}
}

func one(s string) []string { return []string{s} }

func flag(b bool) []string { return one(strconv.FormatBool(b)) }

// baseFields are shared by every entity type. fold applies to all of them
// for types that compare case-insensitively throughout.
func baseFields[T any](base func(T) roster.Base, fold bool) map[string]field[T] {
	return map[string]field[T]{
		"sourcedId":        {get: func(x T) []string { return one(base(x).SourcedID) }, fold: fold},
		"status":           {get: func(x T) []string { return one(string(base(x).Status)) }, fold: fold},
		"dateLastModified": {get: func(x T) []string { return one(base(x).DateLastModified.String()) }, fold: fold},
	}
}

func newTable[T any](base func(T) roster.Base, fold bool, fields map[string]field[T]) table[T] {
	all := baseFields(base, fold)
	for k, f := range fields {
		all[k] = f
	}
	return table[T]{fields: all, base: base}
}

var orgTable = newTable(func(o roster.Org) roster.Base { return o.Base }, false, map[string]field[roster.Org]{
	"name":            {get: func(o roster.Org) []string { return one(o.Name) }},
	"type":            {get: func(o roster.Org) []string { return one(string(o.Type)) }, fold: true},
	"identifier":      {get: func(o roster.Org) []string { return one(o.Identifier) }},
	"parentSourcedId": {get: func(o roster.Org) []string { return one(o.ParentSourcedID) }},
})

var userTable = newTable(func(u roster.User) roster.Base { return u.Base }, false, map[string]field[roster.User]{
	"username":        {get: func(u roster.User) []string { return one(u.Username) }},
	"enabledUser":     {get: func(u roster.User) []string { return flag(u.EnabledUser) }},
	"givenName":       {get: func(u roster.User) []string { return one(u.GivenName) }},
	"familyName":      {get: func(u roster.User) []string { return one(u.FamilyName) }},
	"middleName":      {get: func(u roster.User) []string { return one(u.MiddleName) }},
	"role":            {get: func(u roster.User) []string { return one(string(u.Role)) }, fold: true},
	"identifier":      {get: func(u roster.User) []string { return one(u.Identifier) }},
	"email":           {get: func(u roster.User) []string { return one(u.Email) }},
	"sms":             {get: func(u roster.User) []string { return one(u.SMS) }},
	"phone":           {get: func(u roster.User) []string { return one(u.Phone) }},
	"agentSourcedIds": {get: func(u roster.User) []string { return u.AgentSourcedIDs }},
	"grades":          {get: func(u roster.User) []string { return u.Grades }},
})

var courseTable = newTable(func(c roster.Course) roster.Base { return c.Base }, true, map[string]field[roster.Course]{
	"title":               {get: func(c roster.Course) []string { return one(c.Title) }, fold: true},
	"courseCode":          {get: func(c roster.Course) []string { return one(c.CourseCode) }, fold: true},
	"schoolYearSourcedId": {get: func(c roster.Course) []string { return one(c.SchoolYearSourcedID) }, fold: true},
	"orgSourcedId":        {get: func(c roster.Course) []string { return one(c.OrgSourcedID) }, fold: true},
	"grades":              {get: func(c roster.Course) []string { return c.Grades }, fold: true},
	"subjects":            {get: func(c roster.Course) []string { return c.Subjects }, fold: true},
	"subjectCodes":        {get: func(c roster.Course) []string { return c.SubjectCodes }, fold: true},
})

var classTable = newTable(func(c roster.Class) roster.Base { return c.Base }, false, map[string]field[roster.Class]{
	"title":           {get: func(c roster.Class) []string { return one(c.Title) }},
	"classCode":       {get: func(c roster.Class) []string { return one(c.ClassCode) }},
	"classType":       {get: func(c roster.Class) []string { return one(string(c.ClassType)) }, fold: true},
	"location":        {get: func(c roster.Class) []string { return one(c.Location) }},
	"grades":          {get: func(c roster.Class) []string { return c.Grades }},
	"subjects":        {get: func(c roster.Class) []string { return c.Subjects }},
	"courseSourcedId": {get: func(c roster.Class) []string { return one(c.CourseSourcedID) }},
	"schoolSourcedId": {get: func(c roster.Class) []string { return one(c.SchoolSourcedID) }, fold: true},
	"termSourcedIds":  {get: func(c roster.Class) []string { return c.TermSourcedIDs }},
	"periods":         {get: func(c roster.Class) []string { return c.Periods }},
})

var enrollmentTable = newTable(func(e roster.Enrollment) roster.Base { return e.Base }, true, map[string]field[roster.Enrollment]{
	"userSourcedId":   {get: func(e roster.Enrollment) []string { return one(e.UserSourcedID) }, fold: true},
	"classSourcedId":  {get: func(e roster.Enrollment) []string { return one(e.ClassSourcedID) }, fold: true},
	"schoolSourcedId": {get: func(e roster.Enrollment) []string { return one(e.SchoolSourcedID) }, fold: true},
	"role":            {get: func(e roster.Enrollment) []string { return one(string(e.Role)) }, fold: true},
	"primary":         {get: func(e roster.Enrollment) []string { return flag(e.Primary) }, fold: true},
	"beginDate":       {get: func(e roster.Enrollment) []string { return one(e.BeginDate) }, fold: true},
	"endDate":         {get: func(e roster.Enrollment) []string { return one(e.EndDate) }, fold: true},
})

var sessionTable = newTable(func(a roster.AcademicSession) roster.Base { return a.Base }, true, map[string]field[roster.AcademicSession]{
	"title":           {get: func(a roster.AcademicSession) []string { return one(a.Title) }, fold: true},
	"startDate":       {get: func(a roster.AcademicSession) []string { return one(a.StartDate) }, fold: true},
	"endDate":         {get: func(a roster.AcademicSession) []string { return one(a.EndDate) }, fold: true},
	"type":            {get: func(a roster.AcademicSession) []string { return one(string(a.Type)) }, fold: true},
	"parentSourcedId": {get: func(a roster.AcademicSession) []string { return one(a.ParentSourcedID) }, fold: true},
	"schoolYear":      {get: func(a roster.AcademicSession) []string { return one(a.SchoolYear) }, fold: true},
})

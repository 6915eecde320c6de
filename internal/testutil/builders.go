package testutil

import (
	"github.com/akyairhashvil/resultpro/internal/form"
	"github.com/akyairhashvil/resultpro/internal/models"
	"github.com/akyairhashvil/resultpro/internal/util"
)

// CourseBuilder provides fluent API for creating test courses.
type CourseBuilder struct {
	course models.Course
}

func NewCourse() *CourseBuilder {
	return &CourseBuilder{
		course: models.Course{
			Name:   "MATH101",
			Score:  85,
			Credit: 3,
		},
	}
}

func (b *CourseBuilder) WithName(n string) *CourseBuilder {
	b.course.Name = n
	return b
}

func (b *CourseBuilder) WithScore(s float64) *CourseBuilder {
	b.course.Score = s
	return b
}

func (b *CourseBuilder) WithCredit(c int) *CourseBuilder {
	b.course.Credit = c
	return b
}

func (b *CourseBuilder) Build() models.Course {
	return b.course
}

// Row returns the course as the text a user would have typed.
func (b *CourseBuilder) Row() form.Row {
	return form.RowFromCourse(b.course)
}

// SnapshotBuilder provides fluent API for creating stored snapshots.
type SnapshotBuilder struct {
	snap models.Snapshot
}

func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{}
}

func (b *SnapshotBuilder) WithName(n string) *SnapshotBuilder {
	b.snap.Name = util.Ptr(n)
	return b
}

func (b *SnapshotBuilder) WithCourses(courses ...models.Course) *SnapshotBuilder {
	b.snap.Courses = append(b.snap.Courses, courses...)
	return b
}

func (b *SnapshotBuilder) WithResult(markup string) *SnapshotBuilder {
	b.snap.Result = util.Ptr(markup)
	return b
}

func (b *SnapshotBuilder) Build() models.Snapshot {
	return b.snap
}

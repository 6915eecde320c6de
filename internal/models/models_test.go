package models

import (
	"encoding/json"
	"testing"
)

func TestCourseJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Course{Name: "MATH101", Score: 85, Credit: 3})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(data); got != `{"name":"MATH101","score":85,"credit":3}` {
		t.Fatalf("unexpected course JSON: %s", got)
	}
}

func TestSnapshotZeroValueIsEmpty(t *testing.T) {
	var s Snapshot
	if !s.Empty() {
		t.Fatalf("expected zero snapshot to be empty")
	}
	name := "Ada"
	s.Name = &name
	if s.Empty() {
		t.Fatalf("expected snapshot with name to be non-empty")
	}
}

func TestGPAResultDecodesServiceFields(t *testing.T) {
	var r GPAResult
	if err := json.Unmarshal([]byte(`{"gpa":4.0,"class_of_degree":"First Class"}`), &r); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if r.GPA != 4.0 || r.ClassOfDegree != "First Class" {
		t.Fatalf("unexpected result: %+v", r)
	}
}

package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAnswerString(t *testing.T) {
	Convey("Given solved answers", t, func() {
		So(Answer{Day: 1, Label: Example, Part: 1, Value: 24000}.String(), ShouldEqual, "[EXAMPLE] Answer pt.1: 24000")
		So(Answer{Day: 3, Label: Test, Part: 2, Value: 70}.String(), ShouldEqual, "[TEST] Answer pt.2: 70")
	})
}

func TestLabelFile(t *testing.T) {
	Convey("Given dataset labels", t, func() {
		So(Example.File(), ShouldEqual, "example.dat")
		So(Test.File(), ShouldEqual, "test.dat")
	})
}

// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Label names the input a dataset was read from.
type Label string

// Dataset labels.
const (
	Example Label = "EXAMPLE" // published sample input with known answers
	Test    Label = "TEST"    // the personal puzzle input
)

// Labels lists the datasets in the order they are solved.
var Labels = []Label{Example, Test}

// File returns the file name the dataset is stored under, e.g. "example.dat".
func (l Label) File() string { return strings.ToLower(string(l)) + ".dat" }

// Dataset is the full text of one day's input.
type Dataset struct {
	Day   int
	Label Label
	Text  string
}

// Answer is a solved part of a dataset.
type Answer struct {
	Day   int
	Label Label
	Part  int
	Value int
}

// String renders the answer as "[EXAMPLE] Answer pt.1: 24000".
func (a Answer) String() string {
	return fmt.Sprintf("[%s] Answer pt.%d: %d", a.Label, a.Part, a.Value)
}

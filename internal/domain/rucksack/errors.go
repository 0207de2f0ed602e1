package rucksack

import "errors"

// Sentinel kinds for rucksack errors.
var (
	ErrInvalidItem    = errors.New("invalid item")
	ErrUnevenRucksack = errors.New("rucksack compartments differ in size")
	ErrNoCommonItem   = errors.New("no common item")
	ErrGroupSize      = errors.New("rucksack count is not a multiple of the group size")
)

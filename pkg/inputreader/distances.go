package inputreader

import (
	"strconv"
	"strings"

	"github.com/travigo/catalogue/pkg/util"
)

type DistanceDeclaration struct {
	ToStop   string
	Distance int
}

// ParseDistances reads the "<D>m to <Stop>" entries that follow the
// coordinates in a stop description. Parsing stops at the first entry missing
// its "m" or "to" marker and returns what was collected up to that point.
func ParseDistances(description string) []DistanceDeclaration {
	var declarations []DistanceDeclaration

	pos := strings.IndexByte(description, ',')
	if pos == -1 {
		return declarations
	}
	next := strings.IndexByte(description[pos+1:], ',')
	if next == -1 {
		return declarations
	}
	pos += next + 1

	for {
		metresPos := indexFrom(description, "m", pos+1)
		if metresPos == -1 {
			break
		}

		distance, err := strconv.Atoi(util.Trim(description[pos+1 : metresPos]))
		if err != nil || distance < 0 {
			break
		}

		toPos := indexFrom(description, "to", metresPos)
		if toPos == -1 {
			break
		}

		nameEnd := indexFrom(description, ",", toPos)
		if nameEnd == -1 {
			nameEnd = len(description)
		}

		declarations = append(declarations, DistanceDeclaration{
			ToStop:   util.Trim(description[toPos+2 : nameEnd]),
			Distance: distance,
		})

		if nameEnd == len(description) {
			break
		}
		pos = nameEnd
	}

	return declarations
}

func indexFrom(s string, substr string, from int) int {
	if from > len(s) {
		return -1
	}

	index := strings.Index(s[from:], substr)
	if index == -1 {
		return -1
	}

	return index + from
}

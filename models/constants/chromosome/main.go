package chromosome

import (
	"fmt"
	"strconv"
	"strings"
)

func ValidListOfHumanChromosomes() []string {
	var humChroms []string
	for i := 1; i < 24; i++ {
		humChroms = append(humChroms, fmt.Sprint(i))
	}
	humChroms = append(humChroms, "X")
	humChroms = append(humChroms, "Y")
	humChroms = append(humChroms, "M")
	return humChroms
}

func IsValidHumanChromosome(text string) bool {

	// Check if number can be represented as an int as is non-zero
	chromNumber, _ := strconv.Atoi(text)
	if chromNumber > 0 {
		// It can..
		// Check if it in range 1-23
		if chromNumber < 24 {
			return true
		}
	} else {
		// No it can't..
		// Check if it is an X, Y..
		loweredText := strings.ToLower(text)
		switch loweredText {
		case "x":
			return true
		case "y":
			return true
		}

		// ..or M (MT)
		switch strings.Contains(loweredText, "m") {
		case true:
			return true
		}
	}

	return false
}

// Normalize strips a leading "chr" and upper-cases the sex/mito names.
func Normalize(text string) string {
	value := strings.TrimSpace(text)
	if len(value) >= 3 && strings.EqualFold(value[:3], "chr") {
		value = value[3:]
	}
	switch strings.ToLower(value) {
	case "x", "y":
		return strings.ToUpper(value)
	case "m", "mt":
		return "M"
	}
	return value
}

func IsX(text string) bool {
	return Normalize(text) == "X"
}

// SortKey orders chromosomes 1..23, X, Y, M and then anything else.
func SortKey(text string) int {
	value := Normalize(text)
	if chromNumber, err := strconv.Atoi(value); err == nil && chromNumber > 0 {
		return chromNumber
	}
	switch value {
	case "X":
		return 24
	case "Y":
		return 25
	case "M":
		return 26
	}
	return 27
}

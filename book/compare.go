package book

import "strings"

// CompareByTitle compares two books by title only, byte-wise.
// It returns -1, 0, or +1 and can be used with slices.SortFunc and slices.BinarySearchFunc.
func CompareByTitle(a, b Book) int {
	return strings.Compare(a.title, b.title)
}

// SameTitle returns true if both books have the same title, regardless of all other fields.
func SameTitle(a, b Book) bool {
	return a.title == b.title
}

// DifferentTitle returns true if the titles of the books differ.
func DifferentTitle(a, b Book) bool {
	return a.title != b.title
}

// TitleAfter returns true if the title of a sorts after the title of b.
func TitleAfter(a, b Book) bool {
	return a.title > b.title
}

// TitleAtOrAfter returns true if the title of a sorts after or equal to the title of b.
func TitleAtOrAfter(a, b Book) bool {
	return a.title >= b.title
}

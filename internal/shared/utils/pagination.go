package utils

// PageSize is the fixed number of records per list page.
const PageSize = 12

// PageOffset converts a 1-indexed page number into a row offset.
// Page numbers below 1 are treated as page 1.
func PageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// NormalizePage clamps a page number to the 1-indexed minimum.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// TotalPages computes the page count for a total number of records.
func TotalPages(total int64) int {
	return int((total + PageSize - 1) / PageSize)
}

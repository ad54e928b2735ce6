// Package expense defines the expense domain model shared by the API client,
// the dashboard, and the TUI forms.
package expense

// Category is a closed set of expense categories. CategoryDefault is the
// placeholder shown before the user picks one and is never a valid submission.
type Category int

const (
	CategoryDefault Category = iota
	CategoryLeisure
	CategoryEducation
	CategoryUtilities
	CategoryMisc
)

// Categories lists every category in display order, sentinel first.
var Categories = []Category{
	CategoryDefault,
	CategoryLeisure,
	CategoryEducation,
	CategoryUtilities,
	CategoryMisc,
}

// String returns the display label, which is also the wire value the
// server stores.
func (c Category) String() string {
	switch c {
	case CategoryDefault:
		return "Select a category"
	case CategoryLeisure:
		return "Leisure"
	case CategoryEducation:
		return "Education"
	case CategoryUtilities:
		return "Utilities"
	case CategoryMisc:
		return "Miscellaneous"
	default:
		return "Select a category"
	}
}

// CategoryByLabel maps a wire/display label back to its Category.
// Unknown labels map to CategoryDefault.
func CategoryByLabel(label string) Category {
	for _, c := range Categories {
		if c.String() == label {
			return c
		}
	}
	return CategoryDefault
}

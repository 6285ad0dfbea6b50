package metadata

import "strings"

// Categories is the stock-marketplace category list submissions must use.
var Categories = []string{
	"Animals",
	"Buildings and Architecture",
	"Business",
	"Drinks",
	"The Environment",
	"States of Mind",
	"Food",
	"Graphic Resources",
	"Hobbies and Leisure",
	"Industry",
	"Landscapes",
	"Lifestyle",
	"People",
	"Plants and Flowers",
	"Culture and Religion",
	"Science",
	"Social Issues",
	"Sports",
	"Technology",
	"Transport",
	"Travel",
}

var categoryIndex = func() map[string]string {
	index := make(map[string]string, len(Categories))
	for _, category := range Categories {
		index[strings.ToLower(category)] = category
	}
	return index
}()

// NormalizeCategory matches free-text model output onto the known category
// list case-insensitively. Unknown values are returned trimmed but otherwise
// untouched so a reviewer can correct them.
func NormalizeCategory(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := categoryIndex[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

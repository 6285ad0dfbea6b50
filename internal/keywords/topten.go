package keywords

// TopTenSize is the number of entries a valid top-ten subset must contain.
const TopTenSize = 10

// TopTen resolves the effective top-ten keyword subset. The model-supplied
// subset is used only when it holds exactly TopTenSize entries; anything else
// (missing, short, or padded) is replaced by the first TopTenSize entries of
// the sanitized keyword list, fewer when the list is shorter.
func TopTen(topTen, keywords []string) []string {
	if len(topTen) == TopTenSize {
		return append([]string(nil), topTen...)
	}
	limit := min(len(keywords), TopTenSize)
	return append([]string(nil), keywords[:limit]...)
}

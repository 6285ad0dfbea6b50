package keywords

// StemGroup names a set of surface forms that are semantically redundant for
// stock-photo search. Emitting more than one member of a group reads as tag
// stuffing to marketplace ranking systems.
type StemGroup struct {
	Stem     string
	Variants []string
}

// stemGroups is the hand-authored collision table. Groups are matched in
// declared order and the first group containing a keyword wins; a word listed
// in two groups is attributed to whichever appears first here.
var stemGroups = []StemGroup{
	{Stem: "work", Variants: []string{"work", "working", "worker", "workers", "workplace", "workstation", "workspace"}},
	{Stem: "business", Variants: []string{"business", "businessman", "businesswoman", "businesspeople", "businessperson"}},
	{Stem: "office", Variants: []string{"office", "offices"}},
	{Stem: "technology", Variants: []string{"technology", "technologies", "tech", "technological"}},
	{Stem: "computer", Variants: []string{"computer", "computers", "computing"}},
	{Stem: "team", Variants: []string{"team", "teams", "teamwork", "teammate", "teammates"}},
	{Stem: "success", Variants: []string{"success", "successful", "succeed", "succeeding"}},
	{Stem: "nature", Variants: []string{"nature", "natural"}},
	{Stem: "beauty", Variants: []string{"beauty", "beautiful"}},
	{Stem: "happy", Variants: []string{"happy", "happiness", "happily"}},
	{Stem: "smile", Variants: []string{"smile", "smiling", "smiles", "smiley"}},
	{Stem: "family", Variants: []string{"family", "families", "familial"}},
	{Stem: "child", Variants: []string{"child", "children", "childhood", "kid", "kids"}},
	{Stem: "woman", Variants: []string{"woman", "women"}},
	{Stem: "man", Variants: []string{"man", "men"}},
	{Stem: "travel", Variants: []string{"travel", "traveling", "travelling", "traveler", "traveller"}},
	{Stem: "food", Variants: []string{"food", "foods", "foodie"}},
	{Stem: "health", Variants: []string{"health", "healthy", "healthcare"}},
	{Stem: "fitness", Variants: []string{"fitness", "fit", "workout"}},
	{Stem: "city", Variants: []string{"city", "cities", "urban", "cityscape"}},
	{Stem: "house", Variants: []string{"house", "houses", "housing"}},
	{Stem: "home", Variants: []string{"home", "homes"}},
	{Stem: "water", Variants: []string{"water", "waters", "watery"}},
	{Stem: "sun", Variants: []string{"sun", "sunny", "sunshine", "sunlight"}},
	{Stem: "light", Variants: []string{"light", "lights", "lighting"}},
	{Stem: "color", Variants: []string{"color", "colors", "colour", "colours", "colorful", "colourful"}},
	{Stem: "flower", Variants: []string{"flower", "flowers", "floral"}},
	{Stem: "green", Variants: []string{"green", "greenery"}},
	{Stem: "background", Variants: []string{"background", "backgrounds", "backdrop"}},
	{Stem: "design", Variants: []string{"design", "designs", "designer", "designing"}},
	{Stem: "creative", Variants: []string{"creative", "creativity", "creation"}},
	{Stem: "education", Variants: []string{"education", "educational", "educate", "learning"}},
	{Stem: "finance", Variants: []string{"finance", "financial", "finances"}},
	{Stem: "money", Variants: []string{"money", "cash", "currency"}},
	{Stem: "communication", Variants: []string{"communication", "communicate", "communicating"}},
	{Stem: "relax", Variants: []string{"relax", "relaxing", "relaxation", "relaxed"}},
	{Stem: "celebrate", Variants: []string{"celebrate", "celebration", "celebrating", "celebrations"}},
	{Stem: "love", Variants: []string{"love", "loving", "lovely"}},
	{Stem: "friend", Variants: []string{"friend", "friends", "friendship", "friendly"}},
	{Stem: "meeting", Variants: []string{"meeting", "meetings"}},
}

// stemIndex maps a surface form to the owning group's stem. Built once, with
// first-declared group winning on duplicate surface forms.
var stemIndex = func() map[string]string {
	index := make(map[string]string)
	for _, group := range stemGroups {
		for _, variant := range group.Variants {
			if _, exists := index[variant]; !exists {
				index[variant] = group.Stem
			}
		}
	}
	return index
}()

// Groups returns a copy of the collision table for inspection and testing.
func Groups() []StemGroup {
	cp := make([]StemGroup, len(stemGroups))
	for i, group := range stemGroups {
		cp[i] = StemGroup{
			Stem:     group.Stem,
			Variants: append([]string(nil), group.Variants...),
		}
	}
	return cp
}

// stemFor returns the stem group claimed by a normalized keyword, if any.
func stemFor(keyword string) (string, bool) {
	stem, ok := stemIndex[keyword]
	return stem, ok
}

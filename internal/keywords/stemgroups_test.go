package keywords_test

import (
	"testing"

	"stockmeta/internal/keywords"
)

func TestGroupsVariantsAreNormalized(t *testing.T) {
	for _, group := range keywords.Groups() {
		if group.Stem == "" {
			t.Fatal("group with empty stem")
		}
		for _, variant := range group.Variants {
			if normalized := keywords.Normalize(variant); normalized != variant {
				t.Fatalf("group %q variant %q is not normalized (want %q)", group.Stem, variant, normalized)
			}
			if len([]rune(variant)) < 2 {
				t.Fatalf("group %q variant %q shorter than minimum keyword length", group.Stem, variant)
			}
		}
	}
}

func TestGroupsEachContainTheirStem(t *testing.T) {
	for _, group := range keywords.Groups() {
		found := false
		for _, variant := range group.Variants {
			if variant == group.Stem {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("group %q does not list its own stem as a variant", group.Stem)
		}
	}
}

func TestGroupsReturnsCopy(t *testing.T) {
	groups := keywords.Groups()
	if len(groups) == 0 {
		t.Fatal("expected at least one stem group")
	}
	groups[0].Variants[0] = "tampered"
	if fresh := keywords.Groups(); fresh[0].Variants[0] == "tampered" {
		t.Fatal("Groups exposed internal table storage")
	}
}

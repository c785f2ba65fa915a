package directory

import (
	"slices"

	"github.com/google/uuid"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// normalizeGroup drops entries the directory cannot store.
func normalizeGroup(group interfaces.TranslationGroup) interfaces.TranslationGroup {
	out := make(interfaces.TranslationGroup, len(group))
	for language, id := range group {
		if language == "" || id <= 0 {
			continue
		}
		out[language] = id
	}
	return out
}

// sortedLanguages returns the group's tags in ascending order.
func sortedLanguages(group interfaces.TranslationGroup) []string {
	languages := make([]string, 0, len(group))
	for language := range group {
		languages = append(languages, language)
	}
	slices.Sort(languages)
	return languages
}

// memberIDs returns the group's items ordered by tag.
func memberIDs(group interfaces.TranslationGroup) []int64 {
	ids := make([]int64, 0, len(group))
	for _, language := range sortedLanguages(group) {
		ids = append(ids, int64(group[language]))
	}
	return ids
}

// implicitGroup is the group reported for an item that has a language but no
// stored group.
func implicitGroup(id interfaces.ItemID, language string) interfaces.TranslationGroup {
	if language == "" {
		return interfaces.TranslationGroup{}
	}
	return interfaces.TranslationGroup{language: id}
}

// adoptGroup picks the stored group a save extends. A group qualifies only
// when each of its language slots is named by members, so a save never takes
// over a group whose other items it does not mention. Among qualifying groups
// the one already holding most of members wins, ties going to the group of the
// lowest tag. uuid.Nil means a new group is needed.
func adoptGroup(members interfaces.TranslationGroup, stored map[uuid.UUID]interfaces.TranslationGroup) uuid.UUID {
	rank := make(map[interfaces.ItemID]int, len(members))
	for i, language := range sortedLanguages(members) {
		rank[members[language]] = i
	}

	best, bestCount, bestRank := uuid.Nil, 0, len(members)
	for groupID, group := range stored {
		count, first := 0, len(members)
		covered := true
		for language, id := range group {
			if _, ok := members[language]; !ok {
				covered = false
				break
			}
			if r, ok := rank[id]; ok {
				count++
				first = min(first, r)
			}
		}
		if !covered || count == 0 {
			continue
		}
		if count > bestCount || (count == bestCount && first < bestRank) {
			best, bestCount, bestRank = groupID, count, first
		}
	}
	return best
}

func hasItem(group interfaces.TranslationGroup, id interfaces.ItemID) bool {
	for _, member := range group {
		if member == id {
			return true
		}
	}
	return false
}

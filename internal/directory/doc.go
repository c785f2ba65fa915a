// Package directory provides language directories: the systems of record for
// item language tags and translation groups.
//
// Both implementations share the same policy:
//   - an item with a language but no stored group reports the implicit group
//     {language: item}
//   - saving a group adopts the existing group of its first member (by sorted
//     language tag) that has one, or creates a new group
//   - saved members leave any other group they belonged to; previous members
//     missing from the saved mapping are unlinked
//   - entries with an empty tag or a non-positive item are ignored
//   - language changes do not re-key existing group entries
package directory

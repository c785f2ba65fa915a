// Package langlink exposes item language metadata on REST reads and applies
// language/translation links on REST writes.
//
// Reads gain two fields per public content type:
//   - lang: the item's language tag, or null
//   - translations: the item's translation group keyed by language tag, or {}
//
// Writes accept two optional parameters handled after the item is persisted:
//   - lang: overwrites the item's language
//   - translation_of: joins the item into the translation group of another item
//     under the item's effective language
//
// All state lives in an interfaces.LanguageDirectory. Nothing is cached between
// calls and every skipped or failed step is silent from the caller's point of view.
package langlink

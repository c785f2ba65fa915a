// Package markdown renders item bodies with goldmark and imports directories
// of front matter documents as content items, routing their lang and
// translation_of keys through the link writer.
package markdown

// Package namartha turns a Sanskrit devotional text and its commentary
// sources into the structures a reading interface consumes: a line of verse
// becomes clickable word segments, each word is matched against one or more
// independently-formatted commentary dictionaries, and a markdown corpus of
// per-name scholarship becomes strict structured records.
//
// This package contains domain types, interfaces, and the pure text
// algorithms, following Ben Johnson's Standard Package Layout.
// Implementations with dependencies live in subdirectories named after their
// primary dependency (e.g., sqlite/, goquery/) or concern (annotate/,
// extract/).
package namartha

// Package docname names and files documents by their content.
// It extracts text from a folder of mixed documents, asks a language model
// for a short descriptive name and a category, and renames each file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, gemini/, sqlite/).
package docname

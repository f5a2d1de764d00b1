// Package assets embeds the default word lists and the SQL migrations so the
// binary runs without any files on disk.
package assets

import "embed"

//go:embed words/*.txt
var Words embed.FS

//go:embed sql/*.sql
var Migrations embed.FS

// Paths of the embedded word lists inside Words.
const (
	EasyWords    = "words/easy.txt"
	MediumWords  = "words/medium.txt"
	AllowedWords = "words/allowed.txt"
)

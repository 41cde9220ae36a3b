// Package language normalizes the language codes users put in configuration.
//
// Users write "fi", "FIN", "finnish", or "pt-BR"; translation backends want
// a short BCP 47 tag. Normalize maps all of these to one canonical form and
// rejects anything golang.org/x/text cannot parse.
package language

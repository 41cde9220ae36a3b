// Package srt loads, validates, and writes SubRip (.srt) subtitle files.
//
// Cues keep their index and timing exactly as read; only Text is expected to
// change between Load and Save. Text is NFC-normalized on load so composed
// and decomposed forms of the same characters compare equal downstream.
package srt

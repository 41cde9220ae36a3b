// Package reassembly translates subtitle cues sentence by sentence and then
// pours the translated lines back into the original cue layout.
//
// Subtitle cues routinely split one sentence across several cues. Translating
// each cue on its own produces poor grammar, so the pipeline runs in two
// stages over an immutable snapshot of the input:
//
//  1. Merge walks the cues once, joining each unfinished sentence with the
//     cues that follow it until the text ends with a sentence delimiter, and
//     translates every resulting Group.
//  2. Reallocation hands the translated lines back out using the original
//     per-cue line counts, so the output keeps the input's indices, timings,
//     and line structure.
//
// Translations rarely come back with exactly as many lines as went in. The
// group policy confines any mismatch to the cues of its own sentence; the
// truncate policy fills cues from one running cursor across the whole file.
package reassembly

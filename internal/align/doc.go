// Package align reconciles a hand-authored script with an independently
// timestamped transcription and assigns a start/end time to every script
// word.
//
// The engine runs a single global sequence alignment between the reference
// token stream and the hypothesis fragment stream, projects hypothesis
// timing onto each reference token through the resulting opcodes, and then
// repairs the raw timeline so the output is strictly ordered with no
// negative durations, no overlaps, and no missing values.
//
// Two granularity modes share the matcher and the repairer. Character
// granularity handles recognition output whose fragments are words or
// sub-word chunks (Whisper-style). Token granularity handles forced-aligner
// output that is already segmented into discrete words, including
// unrecognized-token placeholders.
//
// The package is purely computational: it performs no I/O, holds no shared
// state, and is safe for concurrent use.
package align

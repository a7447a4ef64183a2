// Package transcript ingests timestamped transcription output from
// external tools and converts it into the flat hypothesis fragment lists
// the alignment engine consumes.
//
// Two formats are supported: Whisper word-timestamp JSON (the full
// transcription result or an already-flattened word array) and long-format
// Praat TextGrid files as exported by forced-alignment tools such as the
// Montreal Forced Aligner. Silence markers are dropped at ingestion;
// unrecognized-token placeholders are kept, since token-granularity
// alignment knows how to repair them, and are counted for diagnostics.
//
// Running the external tools themselves is out of scope: this package
// begins at their exported files.
package transcript

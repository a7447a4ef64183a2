// Command capsync aligns a hand-authored script with timed transcription
// output and writes a word-level caption timeline.
package main

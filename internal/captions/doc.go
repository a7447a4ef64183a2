// Package captions prepares aligned word timelines for display and
// writes them to disk. The alignment engine guarantees ordering and a
// minimum duration; this package layers the presentation concerns on
// top, such as the readability floor for very short words.
package captions

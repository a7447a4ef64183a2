// Package textnorm cleans and word-segments raw script text into the
// ordered token sequence the alignment engine consumes.
//
// Normalization applies NFC unicode composition and strips the zero-width
// characters that text generators leak into scripts. Tokenization splits on
// whitespace for spaced languages; scripts written without word boundaries
// go through a dictionary-driven longest-match segmenter that can be
// extended with project-specific vocabulary.
//
// Segmentation is deterministic and order-preserving, which the engine's
// timeline guarantees depend on.
package textnorm

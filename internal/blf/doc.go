// Package blf reads Vector BLF (Binary Logging Format) files, the standard
// capture format for automotive CAN/LIN/FlexRay/MOST bus traces.
//
// A BLF file starts with a FileStatistics block followed by a stream of
// objects, each introduced by a "LOBJ" header. Most payload objects arrive
// wrapped in LogContainer objects whose bodies are optionally zlib-compressed
// byte streams of further objects. Parsing is purely sequential and
// self-advancing: the declared object size, rounded up to 4-byte alignment,
// is the sole authority for where the next object starts.
//
// The package exposes three entry points: ReadFile for whole-file parsing,
// Parser.Parse for parsing an in-memory object stream, and StreamingReader
// for bounded-memory iteration over very large captures.
package blf

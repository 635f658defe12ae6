// Package extract provides the line and word extractors: bounded,
// bidirectional, predicate-filtered enumerations over a gap buffer's
// positional interface.
//
// Both extractors are stateless between calls, produce eagerly
// materialized Subject sequences, and never mutate the buffer. They
// consume only the read side of the storage engine, expressed by the
// Buffer interface.
//
// A Subject pairs an inclusive grapheme range with an owned copy of its
// scalar payload, so its lifetime is independent of the buffer. When
// traveling backward the payload is still assembled left-to-right in
// text order.
package extract

// Package mediashow turns raw catalog records into MovieShow, the flat
// template-ready projection consumed by note rendering and file naming.
//
// Every textual attribute becomes an ordered string sequence whose
// length only distinguishes present from absent; numeric and boolean
// attributes stay scalars defaulting to zero. Relational attributes
// exist twice, as a cleaned plain family and a pre-quoted wiki-link
// family. Normalization is total over structurally valid input: missing
// optional data yields empty values, never an error.
package mediashow

package types

// ChecksumType names the checksum algorithm a metadata consumer should use
// for the enumerated paths. The traversal stores it and never interprets it.
type ChecksumType string

package domain

// Fingerprint is the recorded metadata of one artifact: its content digest
// plus size and modification time as observed by the file-system layer.
//
// Only ContentDigest and Size participate in cache digests. MTimeNS is
// carried for cheap staleness pre-checks and must stay out of any digest:
// it differs across machines and checkouts even when content is identical.
type Fingerprint struct {
	ContentDigest Digest
	Size          int64
	MTimeNS       int64
}

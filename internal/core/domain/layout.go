package domain

import "path/filepath"

const (
	// VouchDirName is the name of the internal workspace directory.
	VouchDirName = ".vouch"

	// CacheDirName is the name of the action cache directory.
	CacheDirName = "cache"

	// VouchFileName is the name of the project configuration file.
	VouchFileName = "vouch.yaml"

	// RecordFileExt is the file extension of persisted cache records.
	RecordFileExt = ".vc"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default directory for persisted cache
// records. It joins .vouch and cache.
func DefaultCachePath() string {
	return filepath.Join(VouchDirName, CacheDirName)
}

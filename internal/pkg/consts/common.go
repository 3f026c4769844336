package consts

// AllowedUploadExtensions lists the file extensions (lower case, without
// the dot) accepted by the media upload endpoint.
var AllowedUploadExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// ImageExtensions is the subset of allowed extensions that can be decoded
// for dimension probing.
var ImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

const (
	FeedScopeGlobal    = "global"
	FeedScopeFollowing = "following"
)

const (
	StorageBackendDisk  = "disk"
	StorageBackendMinIO = "minio"
)

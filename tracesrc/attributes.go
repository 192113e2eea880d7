package tracesrc

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	typeKey    = attribute.Key("source.type")
	baseURLKey = attribute.Key("source.base_url")
	pathKey    = attribute.Key("asset.path")

	direntKey    = attribute.Key("dir.entries")
	isDirKey     = attribute.Key("dir.is_dir")
	bytesReadKey = attribute.Key("asset.bytes_read")
)

// The type of asset source being operated on.
//
// Type: string
// Required: No
// Examples: "httpsrc", "filesrc", "blobsrc"
func Type(name string) attribute.KeyValue {
	return typeKey.String(name)
}

// The base URL of the asset source.
//
// Type: string
// Required: No
// Examples: "https://example.com/assets/", "file:///var/assets"
func BaseURL(url string) attribute.KeyValue {
	return baseURLKey.String(url)
}

// The asset path being operated on.
//
// Type: string
// Required: Yes
// Examples: "models/tree.glb", "sounds++boing.ogg"
func Path(name string) attribute.KeyValue {
	return pathKey.String(name)
}

// The number of entries returned by a directory listing.
//
// Type: int
// Required: No
// Examples: 3, 0
func DirEntries(n int) attribute.KeyValue {
	return direntKey.Int(n)
}

// Whether the path was reported to be a directory.
//
// Type: bool
// Required: No
// Examples: true, false
func IsDir(isDir bool) attribute.KeyValue {
	return isDirKey.Bool(isDir)
}

// The number of bytes returned by a single read from an asset stream.
//
// Type: int
// Required: No
// Examples: 4096, 0
func BytesRead(n int) attribute.KeyValue {
	return bytesReadKey.Int(n)
}

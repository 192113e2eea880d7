package internal

import (
	"net/url"
	"path"
	"strings"
)

// JoinURL appends name to the path of base, returning a new URL. The name is
// opaque unescaped text: each segment between "/" separators is escaped, so
// query, fragment, percent, and other reserved characters it contains stay
// literal path text on the wire. base's own query is preserved.
func JoinURL(base *url.URL, name string) *url.URL {
	u := *base

	// the empty name must resolve to the base URL untouched
	if name == "" {
		return &u
	}

	elem := strings.Split(name, "/")
	for i, seg := range elem {
		elem[i] = url.PathEscape(seg)
	}

	joined := path.Join(base.EscapedPath(), strings.Join(elem, "/"))

	// path.Join drops trailing slashes
	if strings.HasSuffix(name, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}

	// joined is assembled from escaped parts, so unescaping cannot fail
	dec, err := url.PathUnescape(joined)
	if err != nil {
		dec = joined
	}

	u.Path = dec
	u.RawPath = ""

	// keep the escaped form only where the default encoding loses it
	if u.EscapedPath() != joined {
		u.RawPath = joined
	}

	return &u
}

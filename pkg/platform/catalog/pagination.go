package catalog

import "strconv"

// Page tokens are explicit offset strings. Opaque tokens can replace this
// without changing the API surface.

// EncodePageToken renders an offset as a token; zero or negative offsets
// produce the empty token.
func EncodePageToken(offset int) string {
	if offset <= 0 {
		return ""
	}
	return strconv.Itoa(offset)
}

// DecodePageToken parses a token back into an offset. The empty token is
// offset zero.
func DecodePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	return strconv.Atoi(token)
}

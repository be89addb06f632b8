package lexicon

import (
	"fmt"

	"github.com/bluesky-social/indigo/atproto/syntax"
)

// ParseNSID checks that s is a namespaced identifier in reverse-domain
// order, for example "com.example.feed.post".
func ParseNSID(s string) (syntax.NSID, error) {
	nsid, err := syntax.ParseNSID(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidNSID, s, err)
	}
	return nsid, nil
}

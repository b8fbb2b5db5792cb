// Package locale translates user-facing strings. Strings are their own
// message ids, so with no catalogue loaded they are shown unchanged.
package locale

import (
	"github.com/leonelquinteros/gotext"
)

const domain = "dungeon"

// Get translates a message id.
var Get = gotext.Get

// Configure loads the catalogue for lang from dir (dir/lang/LC_MESSAGES/dungeon.po).
// An empty dir or lang leaves the passthrough behaviour in place.
func Configure(dir, lang string) {
	if dir == "" || lang == "" {
		return
	}
	gotext.Configure(dir, lang, domain)
}

// Package links finds Discord guild IDs in message links.
package links

import (
	"iter"
	"net/url"
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
	"pkg.mon.icu/guildly/internal/util"
)

// DefaultHosts are the Discord domains whose links are accepted.
var DefaultHosts = []string{"discord.com", "discordapp.com"}

const channelsSegment = "channels"

// Extractor scans free text for Discord message and channel links. It is safe
// for concurrent use.
type Extractor struct {
	finder *regexp.Regexp
	hosts  *hostSet
}

// NewExtractor returns an Extractor accepting links to hosts, or to
// DefaultHosts if none are given.
func NewExtractor(hosts ...string) *Extractor {
	if len(hosts) == 0 {
		hosts = DefaultHosts
	}
	return &Extractor{finder: xurls.Relaxed(), hosts: newHostSet(hosts)}
}

// GuildIDs yields the guild ID of every link in text of the form
// <host>/channels/<guild id>/..., in order of appearance. Anything else is
// skipped. Repeated links yield repeated IDs.
func (e *Extractor) GuildIDs(text string) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for rest := text; rest != ""; {
			loc := e.finder.FindStringIndex(rest)
			if loc == nil || loc[1] == 0 {
				return
			}
			link := rest[loc[0]:loc[1]]
			rest = rest[loc[1]:]

			id, ok := e.guildID(link)
			if !ok {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Collect is a convenience wrapper around GuildIDs.
func (e *Extractor) Collect(text string) []uint64 {
	ids := make([]uint64, 0)
	for id := range e.GuildIDs(text) {
		ids = append(ids, id)
	}
	return ids
}

func (e *Extractor) guildID(link string) (uint64, bool) {
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}

	u, err := url.Parse(link)
	if err != nil || !e.hosts.Contains(u.Hostname()) {
		return 0, false
	}

	segments := strings.Split(strings.TrimPrefix(u.EscapedPath(), "/"), "/")
	if len(segments) < 2 || segments[0] != channelsSegment {
		return 0, false
	}

	id, err := util.ParseSnowflake(segments[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

package stomp

import "strings"

// DestinationKind identifies the category of a Destination.
type DestinationKind int

const (
	// DestinationNone is the zero value, used for an absent destination.
	DestinationNone DestinationKind = iota
	DestinationQueue
	DestinationTopic
	DestinationTempQueue
	DestinationTempTopic
)

// destinationPrefixes is ordered longest-prefix-first among prefixes that
// share a leading segment (temp-queue/temp-topic both start with "/temp-"),
// so ParseDestination's linear scan can just take the first match.
var destinationPrefixes = []struct {
	kind   DestinationKind
	prefix string
}{
	{DestinationTempQueue, "/temp-queue/"},
	{DestinationTempTopic, "/temp-topic/"},
	{DestinationQueue, "/queue/"},
	{DestinationTopic, "/topic/"},
}

// Destination is a typed STOMP destination: a kind (queue, topic, or their
// temporary variants) plus a physical name.
type Destination struct {
	Kind DestinationKind
	Name string
}

// String renders d in its wire prefix form, e.g. "/queue/orders". The zero
// Destination renders as the empty string.
func (d Destination) String() string {
	if d.Kind == DestinationNone && d.Name == "" {
		return ""
	}
	for _, p := range destinationPrefixes {
		if p.kind == d.Kind {
			return p.prefix + d.Name
		}
	}
	return d.Name
}

// ParseDestination converts s into a Destination by matching the longest
// recognized prefix. An unrecognized or unprefixed string defaults to a
// Queue destination with s as its physical name, per §4.C. An empty string
// yields the zero Destination.
func ParseDestination(s string) Destination {
	if s == "" {
		return Destination{}
	}
	for _, p := range destinationPrefixes {
		if strings.HasPrefix(s, p.prefix) {
			return Destination{Kind: p.kind, Name: s[len(p.prefix):]}
		}
	}
	return Destination{Kind: DestinationQueue, Name: s}
}

package stomp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDestination(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		in   string
		want Destination
	}{
		{"", Destination{}},
		{"/queue/orders", Destination{Kind: DestinationQueue, Name: "orders"}},
		{"/topic/prices", Destination{Kind: DestinationTopic, Name: "prices"}},
		{"/temp-queue/abc", Destination{Kind: DestinationTempQueue, Name: "abc"}},
		{"/temp-topic/abc", Destination{Kind: DestinationTempTopic, Name: "abc"}},
		{"orders", Destination{Kind: DestinationQueue, Name: "orders"}},
	}
	for _, c := range cases {
		require.Equal(c.want, ParseDestination(c.in), c.in)
	}
}

func TestDestinationStringRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, s := range []string{"/queue/orders", "/topic/prices", "/temp-queue/abc", "/temp-topic/abc"} {
		require.Equal(s, ParseDestination(s).String())
	}
}

func TestDestinationZeroValueStringsEmpty(t *testing.T) {
	require.New(t).Equal("", Destination{}.String())
}

package dashboard_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
)

func TestNewChannel(t *testing.T) {
	ch := dashboard.NewChannel(gateway.Channel{ID: "c1", Provider: "discord", Enabled: true})
	gt.Equal(t, ch.Name, "discord")
	gt.Equal(t, ch.Status, "unknown")

	ch = dashboard.NewChannel(gateway.Channel{ID: "c2", Name: "ops", Provider: "slack", Status: "connected"})
	gt.Equal(t, ch.Name, "ops")
	gt.Equal(t, ch.Status, "connected")
}

func TestNewDiscord(t *testing.T) {
	profile := dashboard.BotProfile{
		AppID:   "1477080375812423700",
		BotName: "Milo",
		Servers: []dashboard.BotServer{{Name: "Milo HQ", ID: "1", Members: 2, Channels: 5}},
	}

	testCases := []struct {
		name      string
		channels  []dashboard.Channel
		connected bool
	}{
		{name: "no channels", channels: nil, connected: false},
		{name: "other providers only", channels: []dashboard.Channel{{Provider: "slack"}, {Provider: "telegram"}}, connected: false},
		{name: "provider match is exact", channels: []dashboard.Channel{{Provider: "Discord"}, {Provider: "discord-bridge"}}, connected: false},
		{name: "one discord channel", channels: []dashboard.Channel{{Provider: "slack"}, {Provider: "discord"}}, connected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := dashboard.NewDiscord(tc.channels, profile)
			gt.Equal(t, d.Connected, tc.connected)
			if tc.connected {
				gt.Equal(t, d.Status, "online")
			} else {
				gt.Equal(t, d.Status, "offline")
			}
			gt.Equal(t, d.BotName, "Milo")
			gt.A(t, d.Servers).Length(1)
		})
	}
}

package dashboard

import "github.com/m-mizutani/mctl/pkg/domain/model/gateway"

// Channel is the display record for one chat integration
type Channel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Enabled  bool   `json:"enabled"`
	Status   string `json:"status"`
}

const defaultChannelStatus = "unknown"

func NewChannel(raw gateway.Channel) Channel {
	ch := Channel{
		ID:       raw.ID,
		Name:     raw.Name,
		Provider: raw.Provider,
		Enabled:  raw.Enabled,
		Status:   raw.Status,
	}
	if ch.Name == "" {
		ch.Name = raw.Provider
	}
	if ch.Status == "" {
		ch.Status = defaultChannelStatus
	}
	return ch
}

// BotServer is one Discord guild the bot has joined
type BotServer struct {
	Name     string `json:"name" yaml:"name"`
	ID       string `json:"id" yaml:"id"`
	Members  int    `json:"members" yaml:"members"`
	Channels int    `json:"channels" yaml:"channels"`
}

// BotProfile is the static identity of the Discord bot
type BotProfile struct {
	AppID     string      `json:"appId" yaml:"app_id"`
	PublicKey string      `json:"publicKey" yaml:"public_key"`
	BotName   string      `json:"botName" yaml:"bot_name"`
	Servers   []BotServer `json:"servers" yaml:"servers"`
}

// Discord is the bot connection record: the static profile plus a derived connected flag
type Discord struct {
	Connected bool `json:"connected"`
	BotProfile
	Status string `json:"status"`
}

const (
	BotStatusOnline  = "online"
	BotStatusOffline = "offline"
)

// NewDiscord marks the bot connected iff some channel's provider is exactly "discord"
func NewDiscord(channels []Channel, profile BotProfile) Discord {
	connected := false
	for _, ch := range channels {
		if ch.Provider == gateway.ProviderDiscord {
			connected = true
			break
		}
	}

	if profile.Servers == nil {
		profile.Servers = []BotServer{}
	}

	d := Discord{
		Connected:  connected,
		BotProfile: profile,
		Status:     BotStatusOffline,
	}
	if connected {
		d.Status = BotStatusOnline
	}
	return d
}

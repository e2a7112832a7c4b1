package bot

import (
	"net/url"

	"github.com/averyreid/vera/db"
	"github.com/averyreid/vera/discord"
	"github.com/averyreid/vera/verify"
	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/common/log"
	"github.com/sirupsen/logrus"
)

//VeraBot represents an instance of the verification bot, containing handles to the various external connections.
type VeraBot struct {
	DiscordConnection *discord.EventSource
	AuditStore        *db.Connection
	Reconciler        *verify.Reconciler
}

//Init creates a new VeraBot instance
func Init() (*VeraBot, error) {
	var res VeraBot
	//Start audit store connection; nil when no store is configured
	store, err := db.Init()
	if err != nil {
		logrus.Errorf("Cannot start bot due to error initializing audit store connection: %v", err)
		return nil, err
	}

	//Create discord connection
	disc, err := discord.NewEventSource(&res)
	if err != nil {
		logrus.Errorf("Cannot start bot due to error initializing discord connection: %v", err)
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	res.DiscordConnection = disc
	res.AuditStore = store

	var audit verify.AuditRecorder
	if store != nil {
		audit = store
	}
	res.Reconciler = verify.New(discord.NewDirectory(disc.Session()), verify.ConfigFromEnv(), audit)

	//Connect to the gateway only once the reconciler is wired up
	err = disc.Open()
	if err != nil {
		logrus.Errorf("Cannot start bot due to error connecting to discord gateway: %v", err)
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	return &res, nil
}

//BotAddURL generates a URL that can be used to add the bot to a server
func (b *VeraBot) BotAddURL() (*url.URL, error) {
	return b.DiscordConnection.BotAddURL()
}

//DiscordSession returns a handle to the underlying discord session
func (b *VeraBot) DiscordSession() *discordgo.Session {
	return b.DiscordConnection.Session()
}

//Close cleanly terminates the bot instance
func (b *VeraBot) Close() {
	log.Info("Terminating bot...")
	b.DiscordConnection.Close()
	if b.AuditStore != nil {
		b.AuditStore.Close()
	}
}

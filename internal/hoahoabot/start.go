package hoahoabot

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/ilyalavrinov/hoahoabot/internal/hoahoabot/commandhandler"
	"github.com/ilyalavrinov/hoahoabot/pkg/tgbotbase"
)

// Start runs the bot until ctx is cancelled
func Start(ctx context.Context, cfgFilename string) error {
	defer Sync()

	fullcfg, err := NewConfig(cfgFilename)
	if err != nil {
		Errorw("Bot cannot be started", "err", err)
		return err
	}
	if fullcfg.TGBot.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	loc, err := fullcfg.Location()
	if err != nil {
		return err
	}
	tet, err := fullcfg.TetDate(loc)
	if err != nil {
		return err
	}

	bot, err := tgbotbase.NewBot(fullcfg.Config)
	if err != nil {
		Errorw("Cannot set up Telegram bot", "err", err)
		return err
	}

	cron := tgbotbase.NewCron()
	commands, err := commandhandler.New(commandhandler.Settings{
		Location: loc,
		TetDate:  tet,
	}, cron, bot)
	if err != nil {
		return err
	}

	bot.AddHandler(tgbotbase.NewIncomingMessageDealer(commandhandler.NewIncomingHandler(commands)))

	Infow("Starting bot", "timezone", loc.String(), "commands", commands.Names())
	bot.Start(ctx)
	Infow("Bot has stopped")
	return nil
}

package tgbotbase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

var ErrNoToken = errors.New("telegram bot token is not set")

type Bot struct {
	dealers []MessageDealer
	cfg     Config

	bot         *tgbotapi.BotAPI
	botChannels struct {
		in_msg_chan  tgbotapi.UpdatesChannel
		out_msg_chan chan tgbotapi.Chattable
	}
	done chan struct{}
}

func NewBot(cfg Config) (*Bot, error) {
	b := &Bot{dealers: make([]MessageDealer, 0),
		cfg:  cfg,
		done: make(chan struct{})}

	b.botChannels.out_msg_chan = make(chan tgbotapi.Chattable)

	if cfg.TGBot.SkipConnect {
		log.Print("Connection to Telegram is skipped by configuration")
		return b, nil
	}

	botToken := cfg.TGBot.Token
	if botToken == "" {
		return nil, ErrNoToken
	}

	// connecting to Telegram
	if cfg.Proxy_SOCKS5.Server != "" {
		log.WithFields(log.Fields{"server": cfg.Proxy_SOCKS5.Server, "user": cfg.Proxy_SOCKS5.User}).Info("Proxy is set, connecting through it")
		auth := proxy.Auth{User: cfg.Proxy_SOCKS5.User,
			Password: cfg.Proxy_SOCKS5.Pass}
		dialer, err := proxy.SOCKS5("tcp", cfg.Proxy_SOCKS5.Server, &auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("cannot get proxy dialer: %w", err)
		}
		httpTransport := &http.Transport{}
		httpTransport.Dial = dialer.Dial
		httpClient := &http.Client{Transport: httpTransport}
		b.bot, err = tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, httpClient)
		if err != nil {
			return nil, fmt.Errorf("cannot connect via proxy: %w", err)
		}
	} else {
		log.Print("No proxy is set, going without any proxy")
		var err error
		b.bot, err = tgbotapi.NewBotAPI(botToken)
		if err != nil {
			return nil, fmt.Errorf("cannot connect directly: %w", err)
		}
	}

	log.WithField("account", b.bot.Self.UserName).Info("Authorized on account")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.updateTimeout()
	b.botChannels.in_msg_chan = b.bot.GetUpdatesChan(u)

	return b, nil
}

func (b *Bot) AddHandler(d MessageDealer) {
	log.Printf("Preparing '%s' handler", d.name())
	d.init(b.botChannels.out_msg_chan)
	b.dealers = append(b.dealers, d)
}

// Start serves updates until ctx is cancelled
func (b *Bot) Start(ctx context.Context) {
	log.Print("Starting bot")
	for _, d := range b.dealers {
		log.Printf("Starting handler '%s'", d.name())
		d.run()
	}

	go b.serveReplies(ctx)
	isRunning := true
	for isRunning {
		select {
		case update, ok := <-b.botChannels.in_msg_chan:
			if !ok {
				log.Print("Updates channel has been closed")
				isRunning = false
				continue
			}
			log.Debug("Received an update from tgbotapi")
			if b.cfg.TGBot.Verbose {
				dumpUpdate(update)
			}
			if update.Message == nil {
				log.Debug("Message: empty. Skipping")
				continue
			}

			for _, d := range b.dealers {
				d.accept(*update.Message)
			}
		case <-ctx.Done():
			log.WithField("reason", ctx.Err()).Info("Bot context is done")
			isRunning = false
		}
	}
	if b.bot != nil {
		b.bot.StopReceivingUpdates()
	}
	close(b.done)

	log.Print("Main cycle has been aborted")
}

// Send queues msg for delivery; messages sent after the bot has stopped are dropped
func (b *Bot) Send(msg tgbotapi.Chattable) {
	select {
	case b.botChannels.out_msg_chan <- msg:
	case <-b.done:
		log.WithField("msg", msg).Warn("Bot has stopped, dropping outgoing message")
	}
}

func (b *Bot) serveReplies(ctx context.Context) {
	log.Print("Started serving replies")
	for {
		select {
		case msg := <-b.botChannels.out_msg_chan:
			if b.bot == nil {
				log.WithField("msg", msg).Debug("Not connected, reply is not sent")
				continue
			}
			log.Debug("Will send a reply")
			if _, err := b.bot.Send(msg); err != nil {
				log.WithFields(log.Fields{"msg": msg, "err": err}).Error("Could not send reply")
			}
		case <-ctx.Done():
			log.Print("Finished serving replies")
			return
		}
	}
}

func dumpUpdate(update tgbotapi.Update) {
	log.Printf("Update: %+v", update)
	if update.Message != nil {
		if update.Message.From != nil {
			log.Printf("Message from: %s; Text: %s", update.Message.From.UserName, update.Message.Text)
		}
		log.Printf("Message: %+v", update.Message)
		log.Printf("Message.Chat: %+v", update.Message.Chat)
	}
}

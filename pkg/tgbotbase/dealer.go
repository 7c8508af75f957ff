package tgbotbase

import (
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

type MessageDealer interface {
	init(chan<- tgbotapi.Chattable)
	accept(tgbotapi.Message)
	run()
	name() string
}

type HandlerTrigger struct {
	re   *regexp.Regexp
	cmds map[string]bool
}

func NewHandlerTrigger(re *regexp.Regexp, cmds []string) HandlerTrigger {
	cmdmap := make(map[string]bool, len(cmds))
	for _, c := range cmds {
		cmdmap[c] = true
	}

	return HandlerTrigger{re: re,
		cmds: cmdmap}
}

func (t *HandlerTrigger) canHandle(msg tgbotapi.Message) bool {
	if msg.IsCommand() {
		cmd := strings.ToLower(msg.Command())
		if _, found := t.cmds[cmd]; found {
			log.WithFields(log.Fields{"text": msg.Text, "cmd": cmd}).Debug("Message matched command")
			return true
		}
	}
	text := strings.ToLower(msg.Text)
	if t.re != nil && t.re.MatchString(text) {
		log.WithFields(log.Fields{"text": msg.Text, "re": t.re}).Debug("Message matched regexp")
		return true
	}
	return false
}

type IncomingMessageHandler interface {
	Init(chan<- tgbotapi.Chattable) HandlerTrigger
	HandleOne(tgbotapi.Message)
	Name() string
}

// IncomingMessageDealer feeds matching messages to its handler one by one
type IncomingMessageDealer struct {
	handler IncomingMessageHandler
	trigger HandlerTrigger
	inMsgCh chan tgbotapi.Message
}

func NewIncomingMessageDealer(h IncomingMessageHandler) *IncomingMessageDealer {
	d := &IncomingMessageDealer{handler: h}
	return d
}

func (d *IncomingMessageDealer) init(outMsgCh chan<- tgbotapi.Chattable) {
	d.trigger = d.handler.Init(outMsgCh)
	d.inMsgCh = make(chan tgbotapi.Message)
}

func (d *IncomingMessageDealer) accept(msg tgbotapi.Message) {
	if d.trigger.canHandle(msg) {
		d.inMsgCh <- msg
	}
}

func (d *IncomingMessageDealer) run() {
	go func() {
		for msg := range d.inMsgCh {
			d.handler.HandleOne(msg)
		}
	}()
}

func (d *IncomingMessageDealer) name() string {
	return d.handler.Name()
}

type BaseHandler struct {
	OutMsgCh chan<- tgbotapi.Chattable
}

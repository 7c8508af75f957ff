package commandhandler

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ilyalavrinov/hoahoabot/pkg/tgbotbase"
)

type incomingHandler struct {
	tgbotbase.BaseHandler
	commands *Commands
}

var _ tgbotbase.IncomingMessageHandler = &incomingHandler{}

func NewIncomingHandler(commands *Commands) tgbotbase.IncomingMessageHandler {
	return &incomingHandler{commands: commands}
}

func (h *incomingHandler) Init(outMsgCh chan<- tgbotapi.Chattable) tgbotbase.HandlerTrigger {
	h.OutMsgCh = outMsgCh
	return tgbotbase.NewHandlerTrigger(nil, h.commands.Names())
}

func (h *incomingHandler) Name() string {
	return "hoahoa commands"
}

func (h *incomingHandler) HandleOne(msg tgbotapi.Message) {
	req := Request{
		Command: msg.Command(),
		Args:    strings.Fields(msg.CommandArguments()),
		Chat:    tgbotbase.ChatID(msg.Chat.ID),
	}
	reply, ok := h.commands.Handle(req)
	if !ok {
		log.WithFields(log.Fields{"cmd": req.Command, "chat": req.Chat}).Warn("Command is not supported")
		return
	}
	h.OutMsgCh <- tgbotapi.NewMessage(msg.Chat.ID, reply)
}

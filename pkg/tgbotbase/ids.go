package tgbotbase

import "strconv"

// ChatID identifies a Telegram chat (private, group or channel)
type ChatID int64

func (c ChatID) String() string {
	return strconv.FormatInt(int64(c), 10)
}

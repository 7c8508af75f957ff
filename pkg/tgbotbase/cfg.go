package tgbotbase

const defaultUpdateTimeout = 60

// Config holds connection settings shared by every bot built on tgbotbase
type Config struct {
	TGBot struct {
		Token         string
		SkipConnect   bool
		Verbose       bool
		UpdateTimeout int // long polling timeout, seconds
	}

	Proxy_SOCKS5 struct {
		Server string
		User   string
		Pass   string
	}
}

func (cfg Config) updateTimeout() int {
	if cfg.TGBot.UpdateTimeout <= 0 {
		return defaultUpdateTimeout
	}
	return cfg.TGBot.UpdateTimeout
}

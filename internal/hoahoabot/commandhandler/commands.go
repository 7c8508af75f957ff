package commandhandler

import (
	"errors"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/ilyalavrinov/hoahoabot/internal/hoahoabot/reminder"
	"github.com/ilyalavrinov/hoahoabot/internal/hoahoabot/textpool"
	"github.com/ilyalavrinov/hoahoabot/internal/hoahoabot/timeutil"
	"github.com/ilyalavrinov/hoahoabot/pkg/tgbotbase"
)

const (
	CmdStart          = "start"
	CmdAnCom          = "ancom"
	CmdDiVeSinh       = "divesinh"
	CmdHoa            = "hoa"
	CmdSetReminder    = "uongnuoc"
	CmdCancelReminder = "cancel"
	CmdShiftEnd       = "xuongca"
	CmdNoel           = "noel"
	CmdTet            = "tet"
)

const (
	poolStart           = "start"
	poolAnCom           = "ancom"
	poolDiVeSinh        = "divesinh"
	poolHoa             = "hoa"
	poolReminderSet     = "reminder_set"
	poolReminderAlarm   = "reminder_alarm"
	poolCancelled       = "cancelled"
	poolNothingToCancel = "nothing_to_cancel"
	poolShiftBefore     = "shift_before"
	poolShiftAfter      = "shift_after"
	poolNoelBefore      = "noel_before"
	poolNoelAfter       = "noel_after"
	poolTetBefore       = "tet_before"
	poolTetAfter        = "tet_after"
)

const syntaxHint = "Sai cú pháp 😅 Ví dụ: /uongnuoc 14:30 hoặc /uongnuoc 14:30 Nhắc uống nước nha"

const (
	// EnvShiftEnd holds the end of shift as HH:MM; it is read on every /xuongca
	EnvShiftEnd     = "SHIFT_END"
	defaultShiftEnd = "20:00"
)

var ErrNoLocation = errors.New("location is not set")

// Sender delivers messages which are not direct replies, i.e. fired reminders
type Sender interface {
	Send(tgbotapi.Chattable)
}

type Settings struct {
	Location *time.Location
	// TetDate is the single Tet the bot counts down to; zero means DefaultTetDate in Location
	TetDate time.Time

	Now    func() time.Time
	Getenv func(string) string
	Intn   func(n int) int
}

// DefaultTetDate is Tet 2026. It does not move to the next year by itself.
func DefaultTetDate(loc *time.Location) time.Time {
	return time.Date(2026, time.February, 17, 0, 0, 0, 0, loc)
}

// Request is one inbound command with its whitespace separated arguments
type Request struct {
	Command string
	Args    []string
	Chat    tgbotbase.ChatID
}

type handlerFunc func(req Request, now time.Time) string

type Commands struct {
	pools     *textpool.Registry
	scheduler *reminder.Scheduler
	sender    Sender

	loc    *time.Location
	now    func() time.Time
	getenv func(string) string

	handlers map[string]handlerFunc
}

func New(settings Settings, cron tgbotbase.Cron, sender Sender) (*Commands, error) {
	if settings.Location == nil {
		return nil, ErrNoLocation
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	if settings.Getenv == nil {
		settings.Getenv = os.Getenv
	}
	if settings.TetDate.IsZero() {
		settings.TetDate = DefaultTetDate(settings.Location)
	}

	pools, err := textpool.New(textPools, settings.Intn)
	if err != nil {
		return nil, err
	}
	if err := pools.Require(poolStart, poolAnCom, poolDiVeSinh, poolHoa,
		poolReminderSet, poolReminderAlarm, poolCancelled, poolNothingToCancel,
		poolShiftBefore, poolShiftAfter, poolNoelBefore, poolNoelAfter,
		poolTetBefore, poolTetAfter); err != nil {
		return nil, err
	}

	c := &Commands{
		pools:  pools,
		sender: sender,
		loc:    settings.Location,
		now:    settings.Now,
		getenv: settings.Getenv,
	}
	c.scheduler = reminder.NewScheduler(cron, c.loc, reminder.NotifierFunc(c.notify), reminder.WithClock(c.now))

	noel := annualTarget{month: time.December, day: 25, loc: c.loc}
	tet := fixedTarget(settings.TetDate)
	c.handlers = map[string]handlerFunc{
		CmdStart:          c.pick(poolStart),
		CmdAnCom:          c.pick(poolAnCom),
		CmdDiVeSinh:       c.pick(poolDiVeSinh),
		CmdHoa:            c.pick(poolHoa),
		CmdSetReminder:    c.setReminder,
		CmdCancelReminder: c.cancelReminder,
		CmdShiftEnd:       c.shiftEnd,
		CmdNoel:           c.countdown(noel, poolNoelBefore, poolNoelAfter),
		CmdTet:            c.countdown(tet, poolTetBefore, poolTetAfter),
	}

	log.WithFields(log.Fields{"location": c.loc, "tet": settings.TetDate}).Info("Commands are ready")
	return c, nil
}

// Names returns the supported commands, sorted
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.handlers))
	for name := range c.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Handle produces the reply to a command; false means the command is unknown
func (c *Commands) Handle(req Request) (string, bool) {
	h, found := c.handlers[strings.ToLower(req.Command)]
	if !found {
		return "", false
	}
	return h(req, c.now()), true
}

func (c *Commands) pick(pool string) handlerFunc {
	return func(Request, time.Time) string {
		return c.pools.Pick(pool)
	}
}

func (c *Commands) setReminder(req Request, now time.Time) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{"chat": req.Chat, "args": req.Args, "panic": r}).Error("Reminder could not be registered")
			reply = syntaxHint
		}
	}()

	if len(req.Args) == 0 {
		return syntaxHint
	}
	timeText := req.Args[0]
	hour, minute, err := timeutil.ParseTimeOfDay(timeText)
	if err != nil {
		log.WithFields(log.Fields{"chat": req.Chat, "err": err}).Debug("Bad reminder time")
		return syntaxHint
	}

	c.scheduler.Set(req.Chat, hour, minute, strings.Join(req.Args[1:], " "))
	return strings.ReplaceAll(c.pools.Pick(poolReminderSet), "{t}", timeText)
}

func (c *Commands) cancelReminder(req Request, now time.Time) string {
	if c.scheduler.Cancel(req.Chat) {
		return c.pools.Pick(poolCancelled)
	}
	return c.pools.Pick(poolNothingToCancel)
}

func (c *Commands) notify(chat tgbotbase.ChatID, payload string) {
	text := strings.ReplaceAll(c.pools.Pick(poolReminderAlarm), "{m}", payload)
	c.sender.Send(tgbotapi.NewMessage(int64(chat), text))
}

func (c *Commands) shiftEnd(req Request, now time.Time) string {
	endText := c.getenv(EnvShiftEnd)
	if endText == "" {
		endText = defaultShiftEnd
	}
	hour, minute, err := timeutil.ParseTimeOfDay(endText)
	if err != nil {
		log.WithFields(log.Fields{"value": endText, "err": err}).Warn("Bad shift end, using default")
		hour, minute = 20, 0
	}

	local := now.In(c.loc)
	end := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, c.loc)
	if local.After(end) {
		return c.pools.Pick(poolShiftAfter)
	}
	left := timeutil.FormatDurationShort(secondsLeft(local, end))
	return strings.ReplaceAll(c.pools.Pick(poolShiftBefore), "{left}", left)
}

func (c *Commands) countdown(target CountdownTarget, beforePool, afterPool string) handlerFunc {
	return func(_ Request, now time.Time) string {
		left := secondsLeft(now, target.Target(now))
		if left <= 0 {
			return c.pools.Pick(afterPool)
		}
		return strings.ReplaceAll(c.pools.Pick(beforePool), "{left}", timeutil.FormatDurationLong(left))
	}
}

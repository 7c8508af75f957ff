// Package reminder keeps at most one recurring daily reminder per chat.
package reminder

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ilyalavrinov/hoahoabot/pkg/tgbotbase"
)

// DefaultPayload is used when a reminder is set without a message
const DefaultPayload = "Uống nước nhaa 💧"

// Notifier delivers a fired reminder to its chat
type Notifier interface {
	Notify(chat tgbotbase.ChatID, payload string)
}

type NotifierFunc func(chat tgbotbase.ChatID, payload string)

func (f NotifierFunc) Notify(chat tgbotbase.ChatID, payload string) {
	f(chat, payload)
}

// Job describes a daily reminder of a single chat
type Job struct {
	Chat    tgbotbase.ChatID
	Hour    int
	Minute  int
	Payload string
}

// JobName is the cron name of the chat's reminder
func JobName(chat tgbotbase.ChatID) string {
	return fmt.Sprintf("water_%d", chat)
}

type Option func(*Scheduler)

// WithClock replaces time.Now, used to compute the first run
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

type Scheduler struct {
	cron     tgbotbase.Cron
	loc      *time.Location
	notifier Notifier
	now      func() time.Time

	mu   sync.Mutex
	jobs map[tgbotbase.ChatID]*dailyJob
}

func NewScheduler(cron tgbotbase.Cron, loc *time.Location, notifier Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		cron:     cron,
		loc:      loc,
		notifier: notifier,
		now:      time.Now,
		jobs:     make(map[tgbotbase.ChatID]*dailyJob),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type dailyJob struct {
	Job
	s *Scheduler
}

var _ tgbotbase.CronJob = &dailyJob{}

func (j *dailyJob) Do(scheduledWhen time.Time, cron tgbotbase.Cron) {
	j.s.fire(j, scheduledWhen)
}

// Set installs a daily reminder for the chat, replacing the previous one.
// It returns the first time the reminder fires.
func (s *Scheduler) Set(chat tgbotbase.ChatID, hour, minute int, payload string) time.Time {
	if payload == "" {
		payload = DefaultPayload
	}
	j := &dailyJob{
		Job: Job{
			Chat:    chat,
			Hour:    hour,
			Minute:  minute,
			Payload: payload,
		},
		s: s,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.jobs[chat]
	s.jobs[chat] = j
	next := tgbotbase.CalcNextTimeOfDay(s.now(), s.loc, hour, minute)
	s.cron.AddNamedJob(JobName(chat), next, j)

	log.WithFields(log.Fields{"chat": chat, "next": next, "replaced": replaced}).Info("Reminder has been set")
	return next
}

// Cancel removes the chat's reminder and reports whether there was one
func (s *Scheduler) Cancel(chat tgbotbase.ChatID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.jobs[chat]; !found {
		log.WithField("chat", chat).Debug("No reminder to cancel")
		return false
	}
	delete(s.jobs, chat)
	s.cron.RemoveJob(JobName(chat))

	log.WithField("chat", chat).Info("Reminder has been cancelled")
	return true
}

func (s *Scheduler) Get(chat tgbotbase.ChatID) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, found := s.jobs[chat]
	if !found {
		return Job{}, false
	}
	return j.Job, true
}

// Len returns the number of active reminders
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (s *Scheduler) fire(j *dailyJob, scheduledWhen time.Time) {
	s.mu.Lock()
	if s.jobs[j.Chat] != j {
		s.mu.Unlock()
		log.WithFields(log.Fields{"chat": j.Chat, "scheduled": scheduledWhen}).Debug("Superseded reminder fired, ignoring")
		return
	}
	// a late run must not schedule the next one in the past
	base := scheduledWhen
	if now := s.now(); now.After(base) {
		base = now
	}
	next := tgbotbase.CalcNextTimeOfDay(base, s.loc, j.Hour, j.Minute)
	s.cron.AddNamedJob(JobName(j.Chat), next, j)
	s.mu.Unlock()

	log.WithFields(log.Fields{"chat": j.Chat, "scheduled": scheduledWhen, "next": next}).Info("Reminder fired")
	s.notifier.Notify(j.Chat, j.Payload)
}

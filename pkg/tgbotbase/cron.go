package tgbotbase

import (
	"math"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

// Cron interface declares interfaces for communication with some cron daemon
type Cron interface {
	AddJob(when time.Time, job CronJob)
	// AddNamedJob schedules job under name. A pending job with the same name
	// is dropped in the same step, so at most one job per name is ever pending.
	AddNamedJob(name string, when time.Time, job CronJob)
	// RemoveJob drops the pending job with the given name and reports whether there was one
	RemoveJob(name string) bool
}

// CronJob provides a piece of work which should be done once its time has come
type CronJob interface {
	Do(scheduledWhen time.Time, cron Cron)
}

type cronJobDesc struct {
	name     string
	execTime time.Time
	job      CronJob
}

type cronRemoveReq struct {
	name  string
	found chan<- bool
}

type cron struct {
	newJobCh chan cronJobDesc
	removeCh chan cronRemoveReq
	timer    *time.Timer

	jobs           map[time.Time][]cronJobDesc
	named          map[string]time.Time
	sortedJobTimes []time.Time
}

var maxTimerDuration time.Duration = time.Duration(math.MaxInt64) * time.Nanosecond

func (c *cron) AddJob(t time.Time, job CronJob) {
	c.newJobCh <- cronJobDesc{
		execTime: cronKey(t),
		job:      job}
}

func (c *cron) AddNamedJob(name string, t time.Time, job CronJob) {
	c.newJobCh <- cronJobDesc{
		name:     name,
		execTime: cronKey(t),
		job:      job}
}

func (c *cron) RemoveJob(name string) bool {
	found := make(chan bool, 1)
	c.removeCh <- cronRemoveReq{name: name, found: found}
	return <-found
}

// cronKey makes equal instants equal map keys regardless of location and monotonic reading
func cronKey(t time.Time) time.Time {
	return t.Round(0).UTC()
}

func (c *cron) executeJobs(jobsToExecute map[time.Time][]cronJobDesc, now time.Time) {
	for scheduledTime, jobs := range jobsToExecute {
		log.WithFields(log.Fields{"count": len(jobs), "now": now, "scheduled": scheduledTime, "diff": now.Sub(scheduledTime)}).Debug("cron: executing jobs")
		for _, j := range jobs {
			go j.job.Do(scheduledTime, c)
		}
	}
}

func (c *cron) processNewJob(desc cronJobDesc) {
	if desc.name != "" {
		if c.dropNamed(desc.name) {
			log.WithField("name", desc.name).Debug("cron: pending job replaced")
		}
		c.named[desc.name] = desc.execTime
	}

	execTime := desc.execTime
	if _, found := c.jobs[execTime]; found {
		log.Debugf("cron: New job with known time %s has arrived", execTime)
		c.jobs[execTime] = append(c.jobs[execTime], desc)
	} else {
		log.Debugf("cron: New job with not yet known time %s has arrived", execTime)
		c.jobs[execTime] = []cronJobDesc{desc}
		c.sortedJobTimes = append(c.sortedJobTimes, execTime)
		sort.Slice(c.sortedJobTimes, func(i int, j int) bool {
			return c.sortedJobTimes[i].Before(c.sortedJobTimes[j])
		})
	}
	c.resetTimer(time.Now())
}

// dropNamed removes the pending job registered under name, if any
func (c *cron) dropNamed(name string) bool {
	execTime, found := c.named[name]
	if !found {
		return false
	}
	delete(c.named, name)

	descs := c.jobs[execTime]
	kept := descs[:0]
	for _, d := range descs {
		if d.name != name {
			kept = append(kept, d)
		}
	}
	if len(kept) > 0 {
		c.jobs[execTime] = kept
		return true
	}

	delete(c.jobs, execTime)
	pos := sort.Search(len(c.sortedJobTimes), func(i int) bool {
		return !c.sortedJobTimes[i].Before(execTime)
	})
	if pos < len(c.sortedJobTimes) && c.sortedJobTimes[pos].Equal(execTime) {
		c.sortedJobTimes = append(c.sortedJobTimes[:pos], c.sortedJobTimes[pos+1:]...)
	}
	return true
}

func (c *cron) resetTimer(now time.Time) {
	nextTimer := maxTimerDuration
	if len(c.sortedJobTimes) > 0 {
		nextTimer = c.sortedJobTimes[0].Sub(now)
	}

	log.Debugf("cron: Timer will be reset to %s (now %s + duration %s)", now.Add(nextTimer), now, nextTimer)
	if !c.timer.Stop() {
		select {
		case <-c.timer.C:
		default:
		}
	}
	c.timer.Reset(nextTimer)
}

func (c *cron) run() {
	for {
		select {
		case j := <-c.newJobCh:
			log.WithFields(log.Fields{"time": j.execTime, "name": j.name}).Debug("cron: Received new job")
			c.processNewJob(j)
		case req := <-c.removeCh:
			found := c.dropNamed(req.name)
			log.WithFields(log.Fields{"name": req.name, "found": found}).Debug("cron: Remove request")
			c.resetTimer(time.Now())
			req.found <- found
		case now := <-c.timer.C:
			log.Debugf("cron: New trigger tick: %s; registered times: %d", now, len(c.sortedJobTimes))
			pos := sort.Search(len(c.sortedJobTimes), func(i int) bool {
				return now.Before(c.sortedJobTimes[i])
			})
			// preparing list of jobs which should be executed, removing them from internal structures
			jobsToExecute := make(map[time.Time][]cronJobDesc, pos)
			for i := 0; i < pos; i++ {
				t := c.sortedJobTimes[i]
				jobsToExecute[t] = c.jobs[t]
				for _, d := range c.jobs[t] {
					if d.name != "" {
						delete(c.named, d.name)
					}
				}
				delete(c.jobs, t)
			}
			c.sortedJobTimes = c.sortedJobTimes[pos:]
			if len(c.jobs) != len(c.sortedJobTimes) {
				panic("cron: job map and sorted times list size mismatch")
			}
			c.executeJobs(jobsToExecute, now)
			c.resetTimer(now)
		}
	}
}

// NewCron creates an instance of cron
func NewCron() Cron {
	c := cron{
		newJobCh: make(chan cronJobDesc),
		removeCh: make(chan cronRemoveReq),
		jobs:     make(map[time.Time][]cronJobDesc),
		named:    make(map[string]time.Time),
		timer:    time.NewTimer(maxTimerDuration)}

	go c.run()
	log.Print("New cron has started")

	return &c
}

// CalcNextTimeOfDay returns the first hour:minute wall-clock instant in loc strictly after now.
// Days are stepped on the calendar, so DST shifts keep the wall-clock time.
func CalcNextTimeOfDay(now time.Time, loc *time.Location, hour, minute int) time.Time {
	local := now.In(loc)
	nextTime := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !nextTime.After(local) {
		nextTime = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return nextTime
}

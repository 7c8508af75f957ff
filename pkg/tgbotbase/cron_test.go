package tgbotbase

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"
)

type testCronCountingJob struct {
	count          int32
	repeat         *time.Duration
	repeatMaxCount int32
}

func (j *testCronCountingJob) Do(t time.Time, c Cron) {
	n := atomic.AddInt32(&j.count, 1)
	if (j.repeat != nil) && n < j.repeatMaxCount {
		c.AddJob(t.Add(*j.repeat), j)
	}
}

func (j *testCronCountingJob) calls() int32 {
	return atomic.LoadInt32(&j.count)
}

func TestCallOnce(t *testing.T) {
	c := NewCron()
	j := &testCronCountingJob{}
	c.AddJob(time.Now(), j)
	time.Sleep(100 * time.Millisecond)
	if j.calls() != 1 {
		t.Fatal(j.calls())
	}
}

func TestCallXTimes(t *testing.T) {
	c := NewCron()
	j := &testCronCountingJob{}

	now := time.Now()
	n := 5 + rand.Int31n(5)
	var i int32
	for ; i < n; i++ {
		c.AddJob(now, j)
	}

	time.Sleep(100 * time.Millisecond)
	if j.calls() != n {
		t.Fatal(j.calls(), n)
	}
}

func TestDifferentTimesRandom(t *testing.T) {
	durations := []int{1, 2, 3, 4, 5, 6, 7}
	rand.Shuffle(len(durations), func(i int, j int) {
		durations[i], durations[j] = durations[j], durations[i]
	})

	c := NewCron()
	j := &testCronCountingJob{}
	now := time.Now()
	for i := 0; i < len(durations); i++ {
		c.AddJob(now.Add(time.Duration(durations[i])*100*time.Millisecond), j)
	}
	time.Sleep(time.Duration(len(durations)+2) * 100 * time.Millisecond)
	if j.calls() != int32(len(durations)) {
		t.Fatal(j.calls(), len(durations))
	}
}

func TestRepeatXTimes(t *testing.T) {
	c := NewCron()
	repeat := 100 * time.Millisecond
	repeatN := 3 + rand.Int31n(3)
	j := &testCronCountingJob{
		repeat:         &repeat,
		repeatMaxCount: repeatN}

	c.AddJob(time.Now(), j)

	time.Sleep(time.Second)
	if j.calls() != repeatN {
		t.Fatal(j.calls(), repeatN)
	}
}

func TestNamedJobReplaced(t *testing.T) {
	c := NewCron()
	first := &testCronCountingJob{}
	second := &testCronCountingJob{}
	now := time.Now()

	c.AddNamedJob("water_1", now.Add(100*time.Millisecond), first)
	c.AddNamedJob("water_1", now.Add(200*time.Millisecond), second)

	time.Sleep(400 * time.Millisecond)
	if first.calls() != 0 {
		t.Fatal("replaced job has been executed", first.calls())
	}
	if second.calls() != 1 {
		t.Fatal(second.calls())
	}
}

func TestNamedJobSharesTimeWithOthers(t *testing.T) {
	c := NewCron()
	named := &testCronCountingJob{}
	plain := &testCronCountingJob{}
	when := time.Now().Add(100 * time.Millisecond)

	c.AddJob(when, plain)
	c.AddNamedJob("water_2", when, named)
	if !c.RemoveJob("water_2") {
		t.Fatal("named job not found")
	}

	time.Sleep(300 * time.Millisecond)
	if named.calls() != 0 || plain.calls() != 1 {
		t.Fatal(named.calls(), plain.calls())
	}
}

func TestRemoveJob(t *testing.T) {
	c := NewCron()
	j := &testCronCountingJob{}

	if c.RemoveJob("water_3") {
		t.Fatal("unknown job reported as removed")
	}
	c.AddNamedJob("water_3", time.Now().Add(100*time.Millisecond), j)
	if !c.RemoveJob("water_3") {
		t.Fatal("pending job not removed")
	}
	if c.RemoveJob("water_3") {
		t.Fatal("job removed twice")
	}

	time.Sleep(300 * time.Millisecond)
	if j.calls() != 0 {
		t.Fatal(j.calls())
	}
}

func TestNamedJobForgottenAfterExecution(t *testing.T) {
	c := NewCron()
	j := &testCronCountingJob{}
	c.AddNamedJob("water_4", time.Now(), j)
	time.Sleep(100 * time.Millisecond)
	if j.calls() != 1 {
		t.Fatal(j.calls())
	}
	if c.RemoveJob("water_4") {
		t.Fatal("executed job is still pending")
	}
}

func TestCalcNextTimeOfDay(t *testing.T) {
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"later today", time.Date(2025, 3, 10, 8, 0, 0, 0, hcm), time.Date(2025, 3, 10, 14, 30, 0, 0, hcm)},
		{"already passed", time.Date(2025, 3, 10, 15, 0, 0, 0, hcm), time.Date(2025, 3, 11, 14, 30, 0, 0, hcm)},
		{"exactly now", time.Date(2025, 3, 10, 14, 30, 0, 0, hcm), time.Date(2025, 3, 11, 14, 30, 0, 0, hcm)},
		{"month end", time.Date(2025, 12, 31, 23, 0, 0, 0, hcm), time.Date(2026, 1, 1, 14, 30, 0, 0, hcm)},
		// 07:00 UTC is 14:00 in Ho Chi Minh City
		{"now in other location", time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 14, 30, 0, 0, hcm)},
	}
	for _, tc := range cases {
		got := CalcNextTimeOfDay(tc.now, hcm, 14, 30)
		if !got.Equal(tc.want) {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCalcNextTimeOfDayAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	// DST starts on 2025-03-09 at 02:00 local time
	now := time.Date(2025, 3, 8, 10, 0, 0, 0, ny)
	next := CalcNextTimeOfDay(now, ny, 9, 0)
	if h, m, _ := next.Clock(); h != 9 || m != 0 || next.Day() != 9 {
		t.Fatalf("unexpected next time %s", next)
	}
	if next.Sub(now) != 22*time.Hour {
		t.Fatalf("expected 22h until next run, got %s", next.Sub(now))
	}

	after := CalcNextTimeOfDay(next, ny, 9, 0)
	if h, _, _ := after.Clock(); h != 9 || after.Day() != 10 {
		t.Fatalf("unexpected time after DST %s", after)
	}
}

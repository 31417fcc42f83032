package controller

import (
	"sync"
	"time"

	"github.com/julianstephens/moodpet/internal/models"
)

type pendingSave struct {
	token      string
	generation uint64
	snap       models.Snapshot
}

// saver coalesces snapshot saves. With a zero debounce every change is sent
// in its own goroutine. Otherwise the newest snapshot is sent once the
// window after the first unsent change closes.
type saver struct {
	debounce time.Duration
	send     func(pendingSave)

	mu      sync.Mutex
	timer   *time.Timer
	pending *pendingSave
	wg      sync.WaitGroup
}

func (s *saver) schedule(p pendingSave) {
	if s.debounce <= 0 {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.send(p)
		}()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &p
	if s.timer == nil {
		s.wg.Add(1)
		s.timer = time.AfterFunc(s.debounce, s.fire)
	}
}

// fire sends the newest pending snapshot. It owns one wg slot.
func (s *saver) fire() {
	defer s.wg.Done()

	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if p != nil {
		s.send(*p)
	}
}

// cancel drops a pending save that has not been sent yet
func (s *saver) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	if s.timer != nil && s.timer.Stop() {
		s.timer = nil
		s.wg.Done()
	}
}

func (s *saver) flush() {
	s.mu.Lock()
	t := s.timer
	stopped := t != nil && t.Stop()
	s.mu.Unlock()

	if stopped {
		s.fire()
	}
	s.wg.Wait()
}

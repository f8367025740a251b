package ltime

import (
	"sync"
	"time"
)

type Watch interface {
	Now() time.Time
}

type WallWatch struct{}

func (WallWatch) Now() time.Time {
	return time.Now()
}

func NewWallWatch() WallWatch { return WallWatch{} }

type TestingWatch struct {
	Current time.Time
	lock    sync.Mutex
}

func NewTestingWatch(current time.Time) *TestingWatch {
	return &TestingWatch{Current: current}
}

func (f *TestingWatch) Now() time.Time {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.Current
}

func (f *TestingWatch) Advance(d time.Duration) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Current = f.Current.Add(d)
}

var _ Watch = WallWatch{}
var _ Watch = &TestingWatch{}

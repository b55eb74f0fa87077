// SPDX-License-Identifier: Unlicense OR MIT

// Package fileinput implements a button that lets the user pick an image
// file and delivers it as a data URL.
//
// Files that are missing, of another type than the rules allow, or too
// large are dropped without any event.
package fileinput

import (
	"context"
	"sync"

	"gioui.org/layout"
	"gioui.org/widget"
)

// State is the state of a file input.
type State struct {
	// Chooser asks the user for a file when the button is clicked.
	Chooser Chooser
	// Rules restrict the accepted files. The zero Rules means
	// DefaultRules.
	Rules Rules
	// Invalidate, if set, is called after a file has been decoded so the
	// window redraws and Update can deliver it.
	Invalidate func()
	// Rejected, if set, is called with the reason a file was dropped. It
	// may be called from any goroutine.
	Rejected func(err error)
	// Context bounds choosing and decoding. Nil means
	// context.Background.
	Context context.Context

	button widget.Clickable
	name   string

	once sync.Once
	// results holds the latest decoded file not yet delivered.
	results chan result
}

type result struct {
	name string
	data string
}

func (s *State) init() {
	s.once.Do(func() {
		s.results = make(chan result, 1)
	})
}

func (s *State) rules() Rules {
	if s.Rules.MaxSize == 0 && s.Rules.Types == nil {
		return DefaultRules
	}
	return s.Rules
}

func (s *State) ctx() context.Context {
	if s.Context == nil {
		return context.Background()
	}
	return s.Context
}

func (s *State) reject(err error) {
	if s.Rejected != nil {
		s.Rejected(err)
	}
}

// Select validates f and, if accepted, decodes it in the background.
// The returned channel is closed when f has been dropped or its data URL
// is ready for Update.
// Only the latest decoded file waits for Update; an older one that was
// never delivered is dropped.
func (s *State) Select(f *File) <-chan struct{} {
	s.init()
	done := make(chan struct{})
	rules := s.rules()
	if err := rules.Check(f); err != nil {
		if f != nil && f.Body != nil {
			f.Body.Close()
		}
		s.reject(err)
		close(done)
		return done
	}
	go func() {
		defer close(done)
		data, err := EncodeLimit(f, rules.MaxSize)
		if err != nil {
			s.reject(err)
			return
		}
		if s.ctx().Err() != nil {
			return
		}
		s.deliver(result{name: f.Name, data: data})
		if s.Invalidate != nil {
			s.Invalidate()
		}
	}()
	return done
}

// deliver stores r for Update, replacing an undelivered older result.
func (s *State) deliver(r result) {
	for {
		select {
		case s.results <- r:
			return
		default:
		}
		select {
		case <-s.results:
		default:
		}
	}
}

// Choose asks the Chooser for a file in the background and selects it.
// The returned channel is closed when the selection is complete.
func (s *State) Choose() <-chan struct{} {
	done := make(chan struct{})
	if s.Chooser == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		f, err := s.Chooser.ChooseFile(s.ctx())
		if err != nil {
			s.reject(err)
			return
		}
		<-s.Select(f)
	}()
	return done
}

// Update processes button clicks and reports the data URL of the next
// decoded file, if any.
func (s *State) Update(gtx layout.Context) (string, bool) {
	s.init()
	s.update(gtx)
	select {
	case r := <-s.results:
		s.name = r.name
		return r.data, true
	default:
		return "", false
	}
}

func (s *State) update(gtx layout.Context) {
	if s.button.Clicked(gtx) {
		s.Choose()
	}
}

// Name returns the name of the last delivered file.
func (s *State) Name() string {
	return s.name
}

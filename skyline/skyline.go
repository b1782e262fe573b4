/*
Package skyline stacks blocks onto a row of columns.

A block covering the columns [l, r) falls until it touches the highest
column within its range and comes to rest on top of it. The columns it covers
all take the height of the block's top. Package skyline keeps the heights in
a lazy segment tree of range maxima with range assignments, so every drop
costs O(log width).

Clients may subscribe to the landings of blocks; each subscriber receives
every landing, in the order of drops.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package skyline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/lazyseg/algebra"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

var (
	// ErrInvalidInterval signals a block not covering at least one column
	// within the skyline.
	ErrInvalidInterval = errors.New("skyline: invalid interval")
	// ErrClosed signals an operation on a closed skyline.
	ErrClosed = errors.New("skyline: closed")
)

// Heights is the tree type holding the column heights.
type Heights = lazyseg.Tree[int, algebra.Assignment[int]]

// Landing reports a block coming to rest.
type Landing struct {
	Seq    int // 1-based number of the drop
	L, R   int // columns [L, R) covered by the block
	Height int // height of the block's top
}

// Skyline is a row of columns of blocks. It is safe for concurrent use.
type Skyline struct {
	mu      sync.Mutex
	heights *Heights
	cast    *caster.Caster // broadcaster for landings
	seq     int
	closed  bool
}

// New creates a skyline of width columns, all of height 0.
func New(width int) (*Skyline, error) {
	heights, err := lazyseg.New(algebra.MaxAssign(0), width)
	if err != nil {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidInterval, width)
	}
	return &Skyline{
		heights: heights,
		cast:    caster.New(nil),
	}, nil
}

// Width returns the number of columns.
func (s *Skyline) Width() int {
	return s.heights.Len()
}

// Drop lets a block covering the columns [l, r) fall onto the skyline and
// returns the height of its top. Subscribers are informed about the landing
// before Drop returns.
func (s *Skyline) Drop(l, r int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	if l >= r {
		return 0, fmt.Errorf("%w: [%d,%d)", ErrInvalidInterval, l, r)
	}
	top, err := s.heights.Query(l, r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	h := top + 1
	if err := s.heights.Update(l, r, algebra.Assign(h)); err != nil {
		return 0, err
	}
	s.seq++
	tracer().Debugf("skyline: drop #%d on [%d,%d) lands at %d", s.seq, l, r, h)
	s.cast.Pub(Landing{Seq: s.seq, L: l, R: r, Height: h})
	return h, nil
}

// Height returns the maximum height of the columns [l, r). An empty range has
// height 0.
func (s *Skyline) Height(l, r int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, err := s.heights.Query(l, r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	return h, nil
}

// Heights returns the heights of all columns.
func (s *Skyline) Heights() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heights.Values()
}

// Snapshot copies the internal state of the underlying tree, e.g. for dumps.
func (s *Skyline) Snapshot() lazyseg.Snapshot[int, algebra.Assignment[int]] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heights.Snapshot()
}

// Tree returns the underlying tree. Access to it is not synchronized with
// drops.
func (s *Skyline) Tree() *Heights {
	return s.heights
}

// Subscribe returns a channel of landings, starting with the next drop. The
// channel is closed when ctx is done or the skyline is closed. Subscribers
// have to drain their channels until they cancel ctx, as slow subscribers
// hold up drops.
func (s *Skyline) Subscribe(ctx context.Context, capacity uint) (<-chan Landing, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	msgs, ok := s.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	landings := make(chan Landing, capacity)
	go forward(ctx, msgs, landings)
	return landings, nil
}

// forward passes landings from the caster on to a subscriber until ctx is
// done. After that it discards messages until the caster drops the
// subscription, so publishing never waits for a departed subscriber.
func forward(ctx context.Context, msgs <-chan interface{}, landings chan<- Landing) {
	defer func() {
		for range msgs {
		}
	}()
	defer close(landings)
	for {
		select {
		case m, ok := <-msgs:
			if !ok {
				return
			}
			landing, ok := m.(Landing)
			if !ok {
				continue
			}
			select {
			case landings <- landing:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Close ends all subscriptions. Subsequent drops fail with ErrClosed.
func (s *Skyline) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		s.cast.Close()
		tracer().Infof("skyline: closed after %d drops", s.seq)
	}
}

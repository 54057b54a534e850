package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	l := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock("3:7")
			counter++
			l.Unlock("3:7")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	l := New()

	l.Lock("a")
	done := make(chan struct{})
	go func() {
		l.Lock("b")
		l.Unlock("b")
		close(done)
	}()
	<-done
	l.Unlock("a")
}

func TestEntriesAreReaped(t *testing.T) {
	l := New()

	l.Lock("x")
	l.Unlock("x")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.locks)
}

package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryAppendAndGet(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("missing")
	assert.False(t, found)

	repo.Append("s1", "hello", "Hello! Welcome to CodeBiruni.")

	history, found := repo.Get("s1")
	assert.True(t, found)
	assert.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, "assistant", history[1].Role)
}

func TestSessionRepositoryCapsTurns(t *testing.T) {
	repo := NewSessionRepository()

	for i := 0; i < 30; i++ {
		repo.Append("s1", fmt.Sprintf("question-%02d", i), fmt.Sprintf("answer-%02d", i))
	}

	history, found := repo.Get("s1")
	assert.True(t, found)
	assert.Len(t, history, maxTurns)
	// Oldest retained exchange is the one maxTurns/2 appends back
	assert.Equal(t, "question-20", history[0].Content)
	assert.Equal(t, "answer-29", history[len(history)-1].Content)
}

func TestSessionRepositoryConcurrentAppend(t *testing.T) {
	repo := NewSessionRepository()

	// Concurrent appends to the same session must not lose exchanges below
	// the cap or tear the slice. Run with -race to catch regressions.
	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Append("s1", fmt.Sprintf("question-%d", i), fmt.Sprintf("answer-%d", i))
		}(i)
	}
	wg.Wait()

	history, found := repo.Get("s1")
	assert.True(t, found)
	assert.Len(t, history, writers*2)
	for i, turn := range history {
		if i%2 == 0 {
			assert.Equal(t, "user", turn.Role)
		} else {
			assert.Equal(t, "assistant", turn.Role)
		}
	}
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()
	repo.Append("s1", "q", "a")

	repo.Delete("s1")

	_, found := repo.Get("s1")
	assert.False(t, found)
}

package keyboard

import (
	"strings"
	"sync"
)

// Queue holds typed characters between the interrupt handler and the
// line reader. Its zero value is ready to use.
type Queue struct {
	mu    sync.Mutex
	chars []rune
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.chars)
}

// Pop removes and returns the most recently pushed character.
func (q *Queue) Pop() (rune, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pop()
}

func (q *Queue) push(r rune) {
	q.chars = append(q.chars, r)
}

func (q *Queue) pop() (rune, bool) {
	if len(q.chars) == 0 {
		return 0, false
	}
	r := q.chars[len(q.chars)-1]
	q.chars = q.chars[:len(q.chars)-1]
	return r, true
}

// takeLine drains the queue in push order if it ends with '\n', and
// returns the characters before that newline.
func (q *Queue) takeLine() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.chars)
	if n == 0 || q.chars[n-1] != '\n' {
		return "", false
	}
	var b strings.Builder
	for _, r := range q.chars[:n-1] {
		b.WriteRune(r)
	}
	q.chars = q.chars[:0]
	return b.String(), true
}

package service

import (
	"math/rand"
	"regexp"
	"sync"
	"time"

	"propertychat/internal/model"
)

// Response selection modes
const (
	SelectFirst      = "first"
	SelectRandom     = "random"
	SelectRoundRobin = "round_robin"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ResponseGenerator turns a pattern entry into an AI reply
type ResponseGenerator struct {
	mode string

	mu       sync.Mutex
	rng      *rand.Rand
	counters map[string]int // round robin position per intent
}

// NewResponseGenerator creates a generator. Unknown modes behave like random.
func NewResponseGenerator(mode string) *ResponseGenerator {
	return &ResponseGenerator{
		mode:     mode,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		counters: make(map[string]int),
	}
}

// Generate picks a response template and fills its placeholders from vars.
// Quick replies are passed through unchanged.
func (g *ResponseGenerator) Generate(entry model.PatternEntry, vars map[string]string) model.Reply {
	reply := model.Reply{QuickReplies: entry.QuickReplies}
	if len(entry.Responses) == 0 {
		return reply
	}
	reply.Content = Render(entry.Responses[g.pick(entry)], vars)
	return reply
}

func (g *ResponseGenerator) pick(entry model.PatternEntry) int {
	n := len(entry.Responses)
	if n == 1 {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.mode {
	case SelectFirst:
		return 0
	case SelectRoundRobin:
		i := g.counters[entry.Intent] % n
		g.counters[entry.Intent]++
		return i
	default:
		return g.rng.Intn(n)
	}
}

// Render replaces every {key} present in vars. Unknown keys stay as written.
func Render(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := vars[key]; ok {
			return v
		}
		return m
	})
}

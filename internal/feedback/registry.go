// Package feedback maps simulation events to player-visible reactions.
// Actions register themselves in init() functions, allowing world content
// to reference reactions by name without hardcoded dependencies.
package feedback

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mkravets/yardwalk/internal/core"
)

// Notice is one line of player-visible feedback, ready for the status bar.
type Notice struct {
	Text  string
	Color core.Color
}

// Action produces a notice for the actor that triggered it.
type Action func(actorID string) Notice

var (
	actions = make(map[string]Action)
	mu      sync.RWMutex
)

// Register adds an action under the given name.
// Typically called from an init() function.
// Panics if the name is already taken.
func Register(name string, a Action) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := actions[name]; exists {
		panic(fmt.Sprintf("feedback: action %q already registered", name))
	}
	actions[name] = a
}

// Lookup returns the action registered under name.
func Lookup(name string) (Action, bool) {
	mu.RLock()
	defer mu.RUnlock()

	a, ok := actions[name]
	return a, ok
}

// Names returns all registered action names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(actions))
	for name := range actions {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

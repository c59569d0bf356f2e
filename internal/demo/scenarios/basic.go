// Package scenarios contains built-in demo scenarios for Gelaxyai.
package scenarios

import (
	"time"

	"github.com/gelaxyai/gelaxy/internal/demo"
)

const sumJS = `function sum(a, b) {
  return a + b;
}

console.log(sum(2, 3)); // 5`

const fetchPython = `import requests

def fetch_json(url: str) -> dict:
    response = requests.get(url, timeout=10)
    response.raise_for_status()
    return response.json()`

// Overview walks through the main workflow:
// - Asking for JavaScript code and copying the reply
// - Switching languages from the keyboard
// - Starting a new chat while keeping the first one in history
// - A failed request surfacing as a toast
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Ask for code, switch languages, start a new chat",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Describe the code you need"),
		demo.TypeWithDesc("add two numbers and print the result", "Type a request"),
		demo.Wait(400 * time.Millisecond),
		demo.KeyWithDesc("enter", "Send"),
		demo.Wait(1200 * time.Millisecond),
		demo.Reply(sumJS),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Copy the highlighted block with ctrl+y"),
		demo.Key("ctrl+y"),
		demo.Capture(),
		demo.Wait(1200 * time.Millisecond),

		demo.Annotate("Pick another language"),
		demo.Key("ctrl+l"),
		demo.Capture(),
		demo.Wait(800 * time.Millisecond),
		demo.Type("fetch JSON from a URL"),
		demo.Key("enter"),
		demo.Wait(1000 * time.Millisecond),
		demo.ReplyWithDetail("Uses the requests library.", fetchPython),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Start a new chat from the history"),
		demo.Key("tab"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("n"),
		demo.Capture(),
		demo.Wait(1000 * time.Millisecond),

		demo.Annotate("Failures show up as a notice"),
		demo.Type("sort a list"),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),
		demo.Fail("The code generation service is unavailable"),
		demo.Wait(2000 * time.Millisecond),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Overview,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

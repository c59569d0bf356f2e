package codegen

import (
	"context"
	"time"

	"github.com/gelaxyai/gelaxy/internal/catalog"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

// DemoGenerator returns canned snippets without contacting any service. It is
// useful offline and for demos.
type DemoGenerator struct {
	delay time.Duration
}

// NewDemoGenerator creates a demo generator that waits delay before answering.
func NewDemoGenerator(delay time.Duration) *DemoGenerator {
	return &DemoGenerator{delay: delay}
}

// Generate returns the snippet for the requested language, falling back to the
// JavaScript snippet for unknown identifiers.
func (g *DemoGenerator) Generate(ctx context.Context, req Request) (Result, error) {
	if err := Validate(req); err != nil {
		return Result{}, err
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, errors.GenerationFailed("the request was cancelled", ctx.Err())
		case <-timer.C:
		}
	}

	code, ok := demoSnippets[req.Language]
	if !ok {
		code = demoSnippets[catalog.Default().ID]
	}
	logger.WithComponent("codegen").Debug("demo snippet served", "language", req.Language, "known", ok)

	return Result{Code: code, Language: req.Language, Model: "demo"}, nil
}

var demoSnippets = map[string]string{
	"javascript": `// Example JavaScript code
function processData(data) {
  return data
    .filter(item => item.active)
    .map(item => ({
      id: item.id,
      name: item.name,
      timestamp: new Date()
    }));
}

export default processData;`,
	"python": `# Example Python code
def process_data(data):
    """Process the input data"""
    return [
        {
            'id': item['id'],
            'name': item['name'],
            'active': item.get('active', False)
        }
        for item in data
        if item.get('active')
    ]`,
	"java": `// Example Java code
public class DataProcessor {
    public List<Item> processData(List<Item> data) {
        return data.stream()
            .filter(Item::isActive)
            .map(item -> new Item(
                item.getId(),
                item.getName(),
                LocalDateTime.now()
            ))
            .collect(Collectors.toList());
    }
}`,
	"cpp": `// Example C++ code
#include <vector>
#include <algorithm>

std::vector<Item> processData(const std::vector<Item>& data) {
    std::vector<Item> result;
    std::copy_if(data.begin(), data.end(),
                 std::back_inserter(result),
                 [](const Item& item) {
                     return item.isActive();
                 });
    return result;
}`,
	"go": `// Example Go code
package main

func processData(data []Item) []Item {
    var result []Item
    for _, item := range data {
        if item.Active {
            result = append(result, Item{
                ID:   item.ID,
                Name: item.Name,
            })
        }
    }
    return result
}`,
	"typescript": `// Example TypeScript code
interface Item {
  id: string;
  name: string;
  active: boolean;
}

function processData(data: Item[]): Item[] {
  return data
    .filter((item) => item.active)
    .map((item) => ({
      id: item.id,
      name: item.name,
      timestamp: new Date(),
    }));
}

export default processData;`,
	"rust": `// Example Rust code
pub fn process_data(data: Vec<Item>) -> Vec<Item> {
    data.into_iter()
        .filter(|item| item.active)
        .map(|item| Item {
            id: item.id,
            name: item.name,
            active: item.active,
        })
        .collect()
}`,
	"php": `<?php
// Example PHP code
function processData(array $data): array {
    return array_filter(
        array_map(function($item) {
            return [
                'id' => $item['id'],
                'name' => $item['name'],
                'timestamp' => time()
            ];
        }, $data),
        fn($item) => $item['active'] ?? false
    );
}`,
}

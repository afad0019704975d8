// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"slices"

	"github.com/albertocavalcante/glbind/model"
)

// CollectAliases maps every command taking part in an alias relation to the
// other members of its alias group, sorted. Alias relations are symmetric
// and transitive: if B aliases A and C aliases B, each of A, B and C maps to
// the other two. Commands without aliases are omitted.
func CollectAliases(commands []*model.Command) map[string][]string {
	edges := make(map[string][]string)
	for _, c := range commands {
		if c.Alias == "" || c.Alias == c.Name {
			continue
		}
		edges[c.Name] = append(edges[c.Name], c.Alias)
		edges[c.Alias] = append(edges[c.Alias], c.Name)
	}

	result := make(map[string][]string, len(edges))
	visited := make(map[string]bool, len(edges))
	for name := range edges {
		if visited[name] {
			continue
		}
		var group []string
		collectGroup(edges, name, visited, &group)
		slices.Sort(group)

		for _, member := range group {
			others := make([]string, 0, len(group)-1)
			for _, o := range group {
				if o != member {
					others = append(others, o)
				}
			}
			result[member] = others
		}
	}
	return result
}

// collectGroup walks the alias graph from name.
func collectGroup(edges map[string][]string, name string, visited map[string]bool, group *[]string) {
	if visited[name] {
		return // Already processed or cycle
	}
	visited[name] = true
	*group = append(*group, name)

	for _, next := range edges[name] {
		collectGroup(edges, next, visited, group)
	}
}

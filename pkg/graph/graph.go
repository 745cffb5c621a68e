// Copyright 2026 The Amisgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package graph implements a directed graph over named schema definitions.
// Unlike a DAG, cycles are permitted: the graph exists to find them so that
// callers can break them, not to reject them.
package graph

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Vertex represents a definition in the dependency graph.
type Vertex[T comparable] struct {
	// Key is the unique identifier of the vertex.
	Key T
	// DependsOn tracks the vertices this vertex references.
	DependsOn sets.Set[T]
}

// DirectedGraph is a directed graph of definition dependencies. Edges point
// from a definition to the definitions its body references.
type DirectedGraph[T comparable] struct {
	Vertices map[T]*Vertex[T]
}

// New creates a new empty directed graph.
func New[T comparable]() *DirectedGraph[T] {
	return &DirectedGraph[T]{
		Vertices: make(map[T]*Vertex[T]),
	}
}

// AddVertex adds a new vertex to the graph.
func (g *DirectedGraph[T]) AddVertex(key T) error {
	if _, exists := g.Vertices[key]; exists {
		return fmt.Errorf("vertex %v already exists", key)
	}
	g.Vertices[key] = &Vertex[T]{
		Key:       key,
		DependsOn: sets.New[T](),
	}
	return nil
}

// AddDependencies records edges from key to each dependency. Dependencies
// that name an unknown vertex are ignored: a dangling reference is an absent
// edge, not an error. Self-dependencies are kept; a trivial self-reference is
// still a cycle.
func (g *DirectedGraph[T]) AddDependencies(key T, dependencies []T) error {
	vertex, ok := g.Vertices[key]
	if !ok {
		return fmt.Errorf("vertex %v does not exist", key)
	}
	for _, dep := range dependencies {
		if _, ok := g.Vertices[dep]; !ok {
			continue
		}
		vertex.DependsOn.Insert(dep)
	}
	return nil
}

type color int

const (
	white color = iota // unvisited
	gray               // in progress
	black              // done
)

// CyclicVertices returns every vertex that participates in, or reaches, a
// reference cycle. Over-marking is acceptable: a vertex wrongly reported
// cyclic only costs an extra level of indirection downstream. A missed cycle
// would send the consumer into unbounded recursion, so reaching an
// in-progress vertex marks the entire ancestor chain.
func (g *DirectedGraph[T]) CyclicVertices() sets.Set[T] {
	colors := make(map[T]color, len(g.Vertices))
	cyclic := sets.New[T]()

	var visit func(key T) bool
	visit = func(key T) bool {
		colors[key] = gray
		for dep := range g.Vertices[key].DependsOn {
			switch {
			case cyclic.Has(dep):
				cyclic.Insert(key)
			case colors[dep] == gray:
				cyclic.Insert(dep)
				cyclic.Insert(key)
			case colors[dep] == white:
				if visit(dep) {
					cyclic.Insert(key)
				}
			}
		}
		colors[key] = black
		return cyclic.Has(key)
	}

	for key := range g.Vertices {
		if colors[key] == white {
			visit(key)
		}
	}
	return cyclic
}

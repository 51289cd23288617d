package main

import (
	"fmt"

	"github.com/routekit/go-routetrie/pathtrie"
)

func main() {
	tr := pathtrie.New()

	// hop sequences with their measured latency
	routes := []struct {
		hops    []int
		latency uint32
	}{
		{[]int{0, 1}, 10},
		{[]int{0, 1, 2}, 25},
		{[]int{1, 2}, 15},
		{[]int{5, 1}, 7},
		{[]int{2, 1}, 3},
	}

	for _, r := range routes {
		if err := tr.Insert(r.hops, r.latency); err != nil {
			fmt.Printf("insert %v: %v\n", r.hops, err)
			continue
		}
		fmt.Printf("stored %v latency=%v\n", r.hops, r.latency)
	}

	fmt.Printf("\n%d routes over %d nodes:\n", tr.Len(), tr.NodeCount())
	tr.DebugDump()

	// out-of-range hop IDs are rejected
	if err := tr.Insert([]int{99}, 1); err != nil {
		fmt.Printf("\ninsert [99]: %v\n", err)
	}

	fmt.Printf("released %d nodes\n", tr.Release())
}

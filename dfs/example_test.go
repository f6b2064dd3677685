package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/dfs"
)

// ExampleWalk demonstrates a post-order traversal of a diamond:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func ExampleWalk() {
	adj := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E", "F"},
	}
	res, err := dfs.Walk("A", func(s string) []string { return adj[s] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [E F D B C A]
}

// ExampleLongestPath picks the scenic route.
func ExampleLongestPath() {
	adj := map[string][]dfs.Edge[string]{
		"start": {{To: "lake", Weight: 3}, {To: "exit", Weight: 10}},
		"lake":  {{To: "hill", Weight: 4}},
		"hill":  {{To: "exit", Weight: 6}},
	}
	best, path, _ := dfs.LongestPath("start",
		func(s string) []dfs.Edge[string] { return adj[s] },
		func(s string) bool { return s == "exit" })
	fmt.Println(best, path)
	// Output:
	// 13 [start lake hill exit]
}

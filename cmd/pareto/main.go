// Command pareto solves valve and robot-factory puzzles with the frontier
// search engine.
package main

func main() {
	Execute()
}

package main

import "github.com/shawndavis1/ai-test-framework/cmd/aisummary"

func main() {
	aisummary.Execute()
}

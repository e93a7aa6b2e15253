// cmd/aoc/main.go
package main

import (
	"aoc2022/internal/app"
	"aoc2022/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

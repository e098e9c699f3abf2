package main

import "github.com/theirongolddev/goalweek/cmd"

func main() {
	cmd.Execute()
}

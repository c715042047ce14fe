package main

import "logsurrogate/internal/cli"

func main() {
	cli.Execute()
}

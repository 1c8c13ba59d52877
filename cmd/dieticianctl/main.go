package main

import "github.com/tidepool-org/dieticians/cmd/dieticianctl/command"

func main() {
	command.Execute()
}

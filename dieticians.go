package main

import (
	"github.com/tidepool-org/dieticians/api"
)

func main() {
	api.MainLoop()
}

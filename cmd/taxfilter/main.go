// cmd/taxfilter/main.go
package main

import (
	"taxfilter/internal/app"
	"taxfilter/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

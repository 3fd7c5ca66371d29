// cmd/gtdb-typestrains/main.go
package main

import (
	"genometree/internal/app"
	"genometree/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext, app.ExitCanceled)
}

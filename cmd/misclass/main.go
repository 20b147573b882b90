package main

import (
	"misclass/internal/app"
	"misclass/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

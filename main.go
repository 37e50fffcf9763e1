package main

import (
	"coachally/cmd/app"
)

// @title           Coach Ally API
// @version         1.0
// @description     Chat and task coaching backend with an AI coach participant.
// @BasePath        /
func main() {
	app.GetApp().LetsGo()
}

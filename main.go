package main

import (
	"github.com/mydestination/backend/cmd/app"
)

// @title          myDestination API
// @version        1.0.0
// @description    Backend for the myDestination travel activity app: activities, scores and the leaderboard.
// @BasePath       /api
func main() {
	app.Run()
}

package main

import "gymfit_backend/internal/app"

func main() {
	app.Run()
}

package main

import (
	"github.com/taskmgr/go-task-api/app"
	_ "github.com/taskmgr/go-task-api/docs"
)

// @title Task Manager API
// @version 1.0
// @description REST API quản lý task cá nhân với bearer token.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}

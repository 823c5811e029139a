package main

import (
	"path/filepath"

	"github.com/champlain/campus/internal/bootstrap"
	"github.com/champlain/campus/internal/cli"
)

func main() {
	cli.Execute(cli.NewRootCommand(cli.Options{
		Service:       bootstrap.CoursesService,
		DefaultConfig: filepath.Join("configs", "courses.yaml"),
		Short:         "Courses service: CRUD over the course catalogue",
		WithMigrate:   true,
	}))
}

package main

import (
	"path/filepath"

	"github.com/champlain/campus/internal/bootstrap"
	"github.com/champlain/campus/internal/cli"
)

func main() {
	cli.Execute(cli.NewRootCommand(cli.Options{
		Service:       bootstrap.EnrollmentsService,
		DefaultConfig: filepath.Join("configs", "enrollments.yaml"),
		Short:         "Enrollments service: enrolls students in courses",
	}))
}

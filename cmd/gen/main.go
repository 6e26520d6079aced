package main

import (
	"enroll/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CurrentProjectModel{},
		model.UserCurrentProjectModel{},
	}

	generator := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	generator.ApplyBasic(models...)

	generator.Execute()
}

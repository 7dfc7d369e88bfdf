package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/community-aid/helpboard-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.Schedule{},
		&schema.Information{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Schedule{}).
		AddForeignKey("owner_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Schedule{}).
		AddForeignKey("responder_id", "users(id)", "SET NULL", "CASCADE").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Information{}).
		AddForeignKey("user_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
}

package main

import (
	"log"

	"microblog/config"
	"microblog/controllers"
	"microblog/db"
	"microblog/mail"
	"microblog/router"
	"microblog/verify"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	conf := config.Get("config.json")

	database, err := db.Connect(conf)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	app := controllers.NewApp(conf, database, mail.NewSMTPMailer(conf), verify.NewClient(conf))

	r := gin.New()
	r.LoadHTMLGlob("templates/*.html")
	router.Initialize(r, app)

	log.Printf("Listening on :%s", conf.ApiPort)
	if err := r.Run(":" + conf.ApiPort); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"comment-pilot/cmd/api/auth"
	"comment-pilot/cmd/api/router"
	"comment-pilot/cmd/internal/logger"
	"comment-pilot/config"
	"comment-pilot/db"
	"comment-pilot/eventbus"
	"comment-pilot/generator"
	"comment-pilot/wizard"
	_ "comment-pilot/docs" // swag will generate this package
)

// @title           Comment Pilot API
// @version         1.0
// @description     API for drafting and posting AI-assisted YouTube comments
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	oauthClient, err := auth.NewGoogleOAuthClientFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	var bus eventbus.Publisher = eventbus.Nop{}
	if kafkaCfg := config.GetConfig().Kafka; kafkaCfg.Enabled {
		publisher, err := eventbus.NewKafkaPublisher(kafkaCfg.Brokers)
		if err != nil {
			log.Fatal(err)
		}
		defer publisher.Close()
		bus = publisher
	}

	r := router.New(router.Deps{
		OAuthClient: oauthClient,
		JWTManager:  jwtManager,
		Sessions:    wizard.NewStore(),
		Generator:   generator.New(generator.NewGeminiProvider()),
		Bus:         bus,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

	addr := config.GetConfig().Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

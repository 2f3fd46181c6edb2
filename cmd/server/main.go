package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"contactcrm/internal/config"
	"contactcrm/internal/crm"
	"contactcrm/internal/database"
	"contactcrm/internal/http/handlers"
	"contactcrm/internal/http/middleware"
	"contactcrm/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func loadEnv() error {
	possiblePaths := []string{
		".env",
		"./.env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if err := godotenv.Load(path); err == nil {
			log.Printf("Loaded .env from: %s", path)
			return nil
		}
	}

	return fmt.Errorf("could not load .env file from any path")
}

func main() {
	if err := loadEnv(); err != nil {
		log.Printf("Warning: %v", err)
		log.Println("Continuing with system environment variables...")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	database.GetConnect()
	if err := database.AutoMigrate(); err != nil {
		log.Fatal(err)
	}

	blobs, err := storage.NewDiskStorage(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to create storage: %v", err)
	}

	service := crm.NewService(blobs)

	r := gin.Default()

	authH := &handlers.AuthHandler{JWTSecret: cfg.JWTSecret}
	r.POST("/api/v1/auth/register", authH.Register)
	r.POST("/api/v1/auth/login", authH.Login)

	blobH := &handlers.BlobHandler{Blobs: blobs}
	r.GET("/storage/*key", blobH.Serve)

	authed := r.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	contactH := &handlers.ContactHandler{Service: service}
	authed.GET("/contacts", contactH.List)
	authed.POST("/contacts", contactH.Create)
	authed.GET("/contacts/:id", contactH.Show)
	authed.PUT("/contacts/:id", contactH.Update)
	authed.DELETE("/contacts/:id", contactH.Delete)
	authed.POST("/contacts/:id/notes", contactH.AddNote)
	authed.POST("/contacts/:id/activities", contactH.AddActivity)
	authed.POST("/contacts/check-duplicates", contactH.CheckDuplicates)
	authed.PUT("/activities/:id/complete", contactH.CompleteActivity)

	companyH := &handlers.CompanyHandler{Service: service}
	authed.GET("/companies", companyH.List)
	authed.GET("/companies/industries", companyH.Industries)
	authed.POST("/companies", companyH.Create)
	authed.GET("/companies/:id", companyH.Show)
	authed.PUT("/companies/:id", companyH.Update)
	authed.DELETE("/companies/:id", companyH.Delete)

	groupH := &handlers.GroupHandler{Service: service}
	authed.GET("/groups", groupH.List)
	authed.POST("/groups", groupH.Create)
	authed.GET("/groups/:id", groupH.Show)
	authed.PUT("/groups/:id", groupH.Update)
	authed.DELETE("/groups/:id", groupH.Delete)

	dashboardH := &handlers.DashboardHandler{}
	authed.GET("/dashboard", dashboardH.Show)

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		fmt.Println("Listening on port", cfg.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	log.Println("Shutting down server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP server Shutdown: %v", err)
	}

	fmt.Println("Server gracefully stopped")
}

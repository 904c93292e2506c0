package main

// @title           Bookden Books API
// @version         1.0
// @description     Bookstore catalog API: books, reference tables, customers, orders and cover-image uploads.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"log"
	"time"

	"github.com/bookden/books-api/internal/config"
	"github.com/bookden/books-api/internal/db"
	"github.com/bookden/books-api/internal/handler"
	"github.com/bookden/books-api/internal/model"
	"github.com/bookden/books-api/internal/repository"
	"github.com/bookden/books-api/internal/storage"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	database := db.ConnectWithRetry(cfg)

	if err := database.AutoMigrate(
		&model.Publisher{}, &model.Author{}, &model.Series{}, &model.BookType{},
		&model.Book{}, &model.BookCover{},
		&model.Customer{}, &model.Order{}, &model.OrderLine{},
	); err != nil {
		panic(err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("object storage init: %v", err)
	}

	bookRepo := repository.NewGormBookRepository(database)
	catalogRepo := repository.NewGormCatalogRepository(database)
	orderRepo := repository.NewGormOrderRepository(database)

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	catalogHandler := handler.NewCatalogHandler(catalogRepo)

	book := e.Group("/book")
	handler.NewBookHandler(bookRepo).RegisterRoutes(book)
	catalogHandler.RegisterListRoutes(book)

	upload := e.Group("/upload")
	upload.Use(handler.CORS(cfg.CORSAllowOrigin))
	handler.NewUploadHandler(bookRepo, catalogRepo, store).RegisterRoutes(upload)
	catalogHandler.RegisterUploadRoutes(upload)

	customer := e.Group("/customer")
	handler.NewCustomerHandler(orderRepo).RegisterRoutes(customer)

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	e.Run(cfg.HTTPAddr)
}

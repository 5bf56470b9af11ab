package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/broker"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/repository/sqlstore"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/config"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/services"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/logger"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

const usage = "expected 'export', 'import' or 'seed' subcommands"

type catalog struct {
	collections ports.CollectionService
	products    ports.ProductService
	logger      *zap.Logger
}

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "JSON file to import")
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg := config.Load()
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, cfg.DatabaseURL, sqlstore.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to db", zap.Error(err))
	}
	defer store.Close()

	events := broker.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer events.Close()

	c := catalog{
		collections: services.NewCollectionService(store, events, appLogger),
		products:    services.NewProductService(store, events, appLogger),
		logger:      appLogger,
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		err = c.export(ctx, os.Stdout)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		err = c.importFile(ctx, *importFile)
	case "seed":
		seedCmd.Parse(os.Args[2:])
		err = c.seed(ctx)
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
	if err != nil {
		appLogger.Fatal(os.Args[1]+" failed", zap.Error(err))
	}
}

// export writes every collection, products included, as indented JSON.
func (c catalog) export(ctx context.Context, w io.Writer) error {
	collections, err := c.collections.ListCollections(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(collections)
}

func (c catalog) importFile(ctx context.Context, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer file.Close()

	var collections []domain.Collection
	if err := json.NewDecoder(file).Decode(&collections); err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}
	return c.load(ctx, collections)
}

// load recreates collections and their products. Stored ids are reassigned.
func (c catalog) load(ctx context.Context, collections []domain.Collection) error {
	var imported, products int
	for _, col := range collections {
		created, err := c.collections.CreateCollection(ctx, domain.CollectionInput{
			Name:        col.Name,
			Description: col.Description,
			Images:      col.Images,
		})
		if err != nil {
			c.logger.Warn("Skipping collection", zap.String("name", col.Name), zap.Error(err))
			continue
		}
		imported++

		for _, p := range col.Products {
			available := p.IsAvailable
			_, err := c.products.CreateProduct(ctx, domain.ProductInput{
				Title:        p.Title,
				Description:  p.Description,
				Image:        p.Image,
				Dimensions:   p.Dimensions,
				Price:        p.Price,
				CollectionID: created.ID,
				IsAvailable:  &available,
			})
			if err != nil {
				c.logger.Warn("Skipping product", zap.String("title", p.Title), zap.Error(err))
				continue
			}
			products++
		}
	}
	c.logger.Info("Import finished", zap.Int("collections", imported), zap.Int("products", products))
	return nil
}

// seed loads the sample catalog into an empty database.
func (c catalog) seed(ctx context.Context) error {
	existing, err := c.collections.ListCollections(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		c.logger.Info("Database already has collections, skipping seed", zap.Int("collections", len(existing)))
		return nil
	}
	return c.load(ctx, sampleCatalog())
}

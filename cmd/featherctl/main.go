// Command featherctl runs operator tasks against the configured storage.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/featherwood/featherwood-backend/config"
	"github.com/featherwood/featherwood-backend/internal/app/bootstrap"
	"github.com/featherwood/featherwood-backend/internal/app/service"
	"github.com/featherwood/featherwood-backend/internal/seed"
	"github.com/featherwood/featherwood-backend/internal/spreadsheet"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "featherctl",
		Usage: "FeatherWood operator tasks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "debug, info, warn or error",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger.Initialize(logger.Config{
				Level:       c.String("log-level"),
				Format:      "console",
				EnableColor: true,
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Seed an empty catalog from fixtures and the configured documents",
				Action: runSeed,
			},
			{
				Name:  "export-leads",
				Usage: "Write consultation requests to an XLSX workbook (local path or s3://bucket/key)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "destination of the workbook",
						Required: true,
					},
				},
				Action: runExportLeads,
			},
			{
				Name:      "import-products",
				Usage:     "Add products from the first sheet of an XLSX workbook",
				ArgsUsage: "<path or s3://bucket/key>",
				Action:    runImportProducts,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("featherctl failed", err)
	}
}

func runSeed(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("STORAGE_DRIVER is memory; seeded data will not persist")
	}

	store, closeStorage, err := bootstrap.OpenStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	opts := bootstrap.SeedOptions(cfg)
	docs := bootstrap.NewDocumentStore(cfg, opts.ProductsLocation, opts.ProjectsLocation)
	result, err := seed.NewLoader(store, docs, opts).Load(ctx)
	if err != nil {
		return err
	}

	if result.AlreadySeeded {
		fmt.Println("Catalog already seeded, nothing to do")
		return nil
	}
	fmt.Printf("Seeded %d categories, %d products, %d projects, %d blog posts, %d testimonials (%d skipped)\n",
		result.Categories, result.Products, result.Projects, result.BlogPosts, result.Testimonials, result.Skipped)
	return nil
}

func runExportLeads(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := c.String("out")

	store, closeStorage, err := bootstrap.OpenStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	count, err := spreadsheet.ExportLeads(ctx, service.NewConsultationService(store), bootstrap.NewDocumentStore(cfg, out), out)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d consultation requests to %s\n", count, out)
	return nil
}

func runImportProducts(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return cli.Exit("import-products takes exactly one workbook location", 2)
	}
	location := c.Args().First()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, closeStorage, err := bootstrap.OpenStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	data, err := bootstrap.NewDocumentStore(cfg, location).Read(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", location, err)
	}
	products, rejected, err := spreadsheet.ReadProducts(data)
	if err != nil {
		return err
	}
	for _, r := range rejected {
		logger.Warn("Skipping product row", map[string]interface{}{
			"row":    r.Row,
			"reason": r.Reason,
		})
	}

	result, err := seed.ImportProducts(store, products)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d products (%d duplicates, %d invalid rows)\n", result.Created, result.Skipped, len(rejected))
	return nil
}

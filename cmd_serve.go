package main

import (
	"fmt"
	"time"

	"mipfam/contexts"
	gam "mipfam/middleware"
	"mipfam/mvc/analysis"
	"mipfam/mvc/inheritance"
	serviceInfo "mipfam/mvc/service-info"
	"mipfam/mvc/workflows"
	"mipfam/services"
	"mipfam/services/sanitation"
	variantsService "mipfam/services/variants"
	"mipfam/utils"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves inheritance evaluation of JSON batches, annotation of uploaded variant
files and evaluation of variants indexed in elasticsearch.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tConcurrency Level : %d\n"+
		"\tRequest Retention (hours) : %d\n"+
		"\tGene Annotation : %s\n"+
		"\tFamily File Type : %s\n"+
		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n\n"+

		"\tAuthorization Enabled : %t\n"+
		"\tAuthorization Url : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.ConcurrencyLevel,
		cfg.Api.RequestRetentionHours,
		cfg.Analysis.GeneAnnotation,
		cfg.Analysis.FamilyFileType,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.AuthX.IsAuthorizationEnabled,
		cfg.AuthX.AuthorizationUrl,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Elasticsearch (only needed for indexed analyses)
	var es *es7.Client
	if cfg.Elasticsearch.Url != "" {
		client, err := utils.CreateEsConnection(&cfg)
		if err != nil {
			return fmt.Errorf("elasticsearch: %w", err)
		}
		es = client
	}

	// Service Singletons
	az := services.NewAuthzService(&cfg)
	as := services.NewAnalysisService(&cfg)
	vs := variantsService.NewVariantService(&cfg)

	// Service Jobs
	ss := sanitation.NewSanitationService(as, &cfg)
	defer ss.Stop()

	// Configure Server
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
	}))

	// -- Override handlers with the custom analysis context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.AnalysisContext{
				Context:         c,
				Es7Client:       es,
				Config:          &cfg,
				AnalysisService: as,
				VariantService:  vs,
			}
			return h(cc)
		}
	})

	authorize := gam.MandateAuthorizationTokens(az)

	// Begin MVC Routes
	// -- Root
	e.GET("/", serviceInfo.GetWelcome)

	// -- Service Info
	e.GET("/service-info", serviceInfo.GetServiceInfo)

	// -- Inheritance
	e.POST("/inheritance/evaluate", inheritance.EvaluateInheritance,
		// middleware
		gam.AnalyzeDataEverythingPermissionAttribute,
		authorize)

	// -- Analysis
	e.POST("/analysis/run", analysis.RunAnalysis,
		// middleware
		gam.AnalyzeDataEverythingPermissionAttribute,
		authorize,
		gam.ValidateAnalysisOptionAttributes)
	e.GET("/analysis/requests", analysis.GetAllAnalysisRequests,
		// middleware
		gam.QueryDataEverythingPermissionAttribute,
		authorize)
	e.POST("/analysis/indexed", analysis.RunIndexedAnalysis,
		// middleware
		gam.AnalyzeDataEverythingPermissionAttribute,
		authorize,
		gam.MandateChromosomeAttribute,
		gam.MandateCalibratedBounds,
		gam.ValidateAnalysisOptionAttributes)

	// -- Workflows
	e.GET("/workflows", workflows.WorkflowsGet)

	fmt.Printf("[%s] - Serving on :%s\n", time.Now(), cfg.Api.Port)

	// Run
	return e.Start(":" + cfg.Api.Port)
}

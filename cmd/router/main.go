// cmd/router/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ticket-routing/internal/common/config"
	"ticket-routing/internal/common/database"
	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/common/observability"
	"ticket-routing/internal/common/validation"
	"ticket-routing/internal/driver"
	"ticket-routing/internal/models"
	"ticket-routing/internal/notify"
	"ticket-routing/internal/orchestrator"
	"ticket-routing/internal/store"

	commonaws "ticket-routing/internal/common/aws"

	calculatepriority "ticket-routing/internal/tools/calculate-priority"
	checkcustomer "ticket-routing/internal/tools/check-customer"
	checkservicestatus "ticket-routing/internal/tools/check-service-status"
	classifyissue "ticket-routing/internal/tools/classify-issue"
	extractentities "ticket-routing/internal/tools/extract-entities"
	gethistory "ticket-routing/internal/tools/get-history"
	routeteam "ticket-routing/internal/tools/route-team"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	ticketsPath := flag.String("tickets", "", "path to a JSON ticket batch (sample tickets when empty)")
	outputPath := flag.String("output", "routing_results.json", "path for the JSON results file")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting ticket router...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Metrics endpoint ---
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			zapLog.Info("metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	// --- Init Redis (optional, caching only) ---
	var redisClient *redis.Client
	if cfg.Database.Redis.Enabled {
		var rc *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rc, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rc.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Warn("redis unavailable, lookup caching disabled", zap.Error(err))
		} else {
			redisClient = rc.GetClient()
			defer rc.Close()
			zapLog.Info("Redis connected successfully")
		}
	}

	// --- Init PostgreSQL (optional, decision persistence) ---
	var decisionStore *store.PostgresStore
	if cfg.Database.Postgres.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Warn("postgres unavailable, decisions will not be persisted", zap.Error(err))
		} else {
			defer pg.Close()
			decisionStore = store.NewPostgresStore(pg.GetDB(), log)
			if err := decisionStore.EnsureSchema(ctx); err != nil {
				zapLog.Warn("decision table setup failed, persistence disabled", zap.Error(err))
				decisionStore = nil
			} else {
				zapLog.Info("PostgreSQL connected successfully")
			}
		}
	}

	// --- Init Elasticsearch (optional, ticket history) ---
	var historySource gethistory.HistorySource = gethistory.NewStaticHistorySource()
	if cfg.Database.Elasticsearch.Enabled {
		var es *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return es.Ping()
		}, 5, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Warn("elasticsearch unavailable, using built-in history", zap.Error(err))
		} else {
			historySource = gethistory.NewESHistorySource(es.Client, cfg.Routing.HistoryIndex)
			zapLog.Info("Elasticsearch connected successfully")
		}
	}

	toolset := buildToolset(cfg, redisClient, historySource, log)

	var drv orchestrator.Driver
	if cfg.Driver.Mode == "llm" {
		drv = driver.NewLLMDriver(&cfg.Driver.GenAI, log)
		zapLog.Info("using LLM reasoning driver", zap.String("gateway", cfg.Driver.GenAI.BaseURL))
	} else {
		drv = driver.NewRuleDriver(log)
		zapLog.Info("using rule reasoning driver")
	}

	core := orchestrator.New(&orchestrator.Config{
		MaxToolCalls:    cfg.Routing.MaxToolCalls,
		DecisionTimeout: config.GetDuration(cfg.Routing.DecisionTimeout),
	}, drv, toolset, obs, log)

	notifier := buildNotifier(ctx, cfg, zapLog, log)

	tickets, err := loadTickets(*ticketsPath)
	if err != nil {
		zapLog.Fatal("ticket load failed", zap.Error(err))
	}
	zapLog.Info("tickets loaded", zap.Int("count", len(tickets)))

	decisions := processTickets(ctx, core, notifier, decisionStore, tickets, cfg.Routing.Concurrency, log)

	printResults(decisions, tickets)
	printSummary(decisions)

	if err := store.WriteResultsFile(*outputPath, decisions); err != nil {
		zapLog.Warn("results file write failed", zap.Error(err))
	} else {
		zapLog.Info("results written", zap.String("path", *outputPath))
	}
}

func buildToolset(cfg *config.Config, redisClient *redis.Client, historySource gethistory.HistorySource, log logger.Logger) *orchestrator.Toolset {
	customerCfg := checkcustomer.LoadConfig()
	statusCfg := checkservicestatus.LoadConfig()
	if cfg.Routing.CacheTTL > 0 {
		customerCfg.CacheTTL = time.Duration(cfg.Routing.CacheTTL) * time.Second
		statusCfg.CacheTTL = time.Duration(cfg.Routing.CacheTTL) * time.Second
	}

	historyCfg := gethistory.LoadConfig()
	if cfg.Routing.HistoryLimit > 0 {
		historyCfg.DefaultLimit = cfg.Routing.HistoryLimit
	}
	if cfg.Routing.HistoryIndex != "" {
		historyCfg.Index = cfg.Routing.HistoryIndex
	}

	routeCfg := routeteam.LoadConfig()
	if cfg.Routing.ReviewThreshold > 0 {
		routeCfg.ReviewThreshold = cfg.Routing.ReviewThreshold
	}

	return &orchestrator.Toolset{
		ClassifyIssue:   classifyissue.NewHandler(classifyissue.LoadConfig(), log),
		ExtractEntities: extractentities.NewHandler(extractentities.LoadConfig(), log),
		CheckCustomer: checkcustomer.NewHandler(
			customerCfg, checkcustomer.NewStaticDirectory(checkcustomer.SeedProfiles()), redisClient, log),
		CheckServiceStatus: checkservicestatus.NewHandler(
			statusCfg, checkservicestatus.NewStaticStatusProvider(), redisClient, log),
		GetHistory:        gethistory.NewHandler(historyCfg, historySource, log),
		CalculatePriority: calculatepriority.NewHandler(calculatepriority.LoadConfig(), log),
		RouteTeam:         routeteam.NewHandler(routeCfg, log),
	}
}

func buildNotifier(ctx context.Context, cfg *config.Config, zapLog *zap.Logger, log logger.Logger) *notify.Notifier {
	if !cfg.Notifications.Email.Enabled && !cfg.Notifications.SMS.Enabled {
		return nil
	}

	var emailClient notify.EmailSender
	if cfg.Notifications.Email.Enabled {
		ses, err := commonaws.NewSESClient(ctx, &cfg.Notifications)
		if err != nil {
			zapLog.Warn("SES client init failed, email alerts disabled", zap.Error(err))
		} else {
			emailClient = ses
		}
	}

	var smsClient notify.SMSSender
	if cfg.Notifications.SMS.Enabled {
		sns, err := commonaws.NewSNSClient(ctx, &cfg.Notifications)
		if err != nil {
			zapLog.Warn("SNS client init failed, SMS alerts disabled", zap.Error(err))
		} else {
			smsClient = sns
		}
	}

	if emailClient == nil && smsClient == nil {
		return nil
	}
	return notify.NewNotifier(&cfg.Notifications, emailClient, smsClient, log)
}

// loadTickets reads a ticket batch from disk, or falls back to the built-in
// samples. File batches are schema-checked before unmarshalling.
func loadTickets(path string) ([]models.Ticket, error) {
	if path == "" {
		return sampleTickets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ticket file: %w", err)
	}

	result, err := validation.ValidateTicketBatch(data)
	if err != nil {
		return nil, fmt.Errorf("validate ticket batch: %w", err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("ticket batch is invalid: %s", result.ErrorSummary())
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, fmt.Errorf("parse ticket batch: %w", err)
	}
	return tickets, nil
}

// processTickets runs up to `concurrency` decision cycles at once. Each
// ticket is independent: a failed or cancelled cycle never affects the rest.
func processTickets(ctx context.Context, core *orchestrator.Orchestrator, notifier *notify.Notifier,
	decisionStore *store.PostgresStore, tickets []models.Ticket, concurrency int, log logger.Logger) []models.FinalDecision {

	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*models.FinalDecision, len(tickets))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, ticket := range tickets {
		wg.Add(1)
		go func(idx int, t models.Ticket) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			decision, err := core.ProcessTicket(ctx, t)
			if err != nil {
				log.WithError(err).Error("ticket rejected", map[string]interface{}{
					"ticketId": t.TicketID,
				})
				return
			}
			results[idx] = decision

			if notifier != nil {
				notifier.ReviewAlert(ctx, decision)
			}
			if decisionStore != nil {
				if err := decisionStore.Save(ctx, decision); err != nil {
					log.WithError(err).Warn("decision not persisted", map[string]interface{}{
						"ticketId": t.TicketID,
					})
				}
			}
		}(i, ticket)
	}
	wg.Wait()

	decisions := make([]models.FinalDecision, 0, len(tickets))
	for _, d := range results {
		if d != nil {
			decisions = append(decisions, *d)
		}
	}
	return decisions
}

func printResults(decisions []models.FinalDecision, tickets []models.Ticket) {
	if len(decisions) == 0 {
		fmt.Println("No decisions to display.")
		return
	}

	subjects := make(map[string]string, len(tickets))
	for _, t := range tickets {
		subjects[t.TicketID] = t.Subject
	}

	fmt.Println("\n================================================================================")
	fmt.Println("ROUTING DECISIONS")
	fmt.Println("================================================================================")
	for _, d := range decisions {
		fmt.Printf("\nTicket ID: %s\n", d.TicketID)
		fmt.Printf("Subject: %s\n", subjects[d.TicketID])
		fmt.Printf("Customer: %s\n", d.CustomerID)
		fmt.Printf("Assigned Team: %s\n", d.AssignedTeam)
		fmt.Printf("Priority Level: %s\n", d.PriorityLevel)
		fmt.Printf("Confidence Score: %.1f%%\n", d.ConfidenceScore)
		fmt.Printf("Processing Time: %.0fms\n", d.ProcessingTimeMs)
		if d.RequiresManualReview {
			fmt.Println("** Manual review required **")
		}
	}
}

func printSummary(decisions []models.FinalDecision) {
	if len(decisions) == 0 {
		return
	}

	teams := make(map[models.Team]int)
	priorities := make(map[models.PriorityLevel]int)
	reviews := 0
	var confidenceSum, durationSum float64

	for _, d := range decisions {
		teams[d.AssignedTeam]++
		priorities[d.PriorityLevel]++
		confidenceSum += d.ConfidenceScore
		durationSum += d.ProcessingTimeMs
		if d.RequiresManualReview {
			reviews++
		}
	}

	n := float64(len(decisions))
	fmt.Println("\n================================================================================")
	fmt.Println("SUMMARY")
	fmt.Println("================================================================================")
	fmt.Printf("Decisions: %d\n", len(decisions))
	fmt.Println("\nTeam distribution:")
	for _, team := range []models.Team{models.TeamNetworkOperations, models.TeamBillingSupport, models.TeamTechnicalSupport, models.TeamAccountManagement} {
		if teams[team] > 0 {
			fmt.Printf("  %-20s %d\n", team, teams[team])
		}
	}
	fmt.Println("\nPriority distribution:")
	for _, level := range []models.PriorityLevel{models.PriorityP0, models.PriorityP1, models.PriorityP2, models.PriorityP3} {
		if priorities[level] > 0 {
			fmt.Printf("  %-4s %d\n", level, priorities[level])
		}
	}
	fmt.Printf("\nAverage confidence: %.1f%%\n", confidenceSum/n)
	fmt.Printf("Average processing time: %.1fms\n", durationSum/n)
	fmt.Printf("Manual reviews: %d\n", reviews)
}

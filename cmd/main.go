// cmd/main.go in catalog-service
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/config"
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/carrier"
	pkgkafka "github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/kafka"
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
	pkgrabbit "github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/rabbitmq"
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/service"
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/store"
)

// syncRequest is the message other services publish to ask for a carrier
// catalog refresh.
type syncRequest struct {
	Carrier     string            `json:"carrier"`
	Kind        string            `json:"kind"` // "BOX" or "SERVICE"
	Credentials map[string]string `json:"credentials"`
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.LoadConfig()

	// Postgres holds the per-warehouse resource lists.
	pgStore, err := store.NewPostgresStore(cfg.GetDBURL())
	if err != nil {
		log.Fatalf("failed to create store: %v", err)
	}
	defer pgStore.Close()

	// RabbitMQ carries merchant alert jobs to the communications service.
	var alerts service.AlertQueue
	var rabbitClient *pkgrabbit.RabbitmqClient
	if cfg.RABBITMQ_HOST != "" {
		rabbitClient, err = pkgrabbit.NewClient(cfg.GetRabbitMQURL())
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		if err := rabbitClient.CreateQueue(service.AlertQueueName); err != nil {
			log.Fatalf("failed to create alert queue: %v", err)
		}
		alerts = rabbitClient
	}

	// Kafka producer publishes catalog events for the gateway and trackers.
	var producer service.Publisher
	var kafkaProducer *pkgkafka.KafkaProducer
	if cfg.KAFKA_BROKER != "" && cfg.KAFKA_EVENT_TOPIC != "" {
		kafkaProducer = pkgkafka.NewKafkaProducer(cfg.KAFKA_BROKER, cfg.KAFKA_EVENT_TOPIC)
		producer = kafkaProducer
	}

	provider := carrier.NewShippoProvider(cfg.SHIPPO_API_URL)
	svc := service.NewCatalogService(pgStore, provider, producer, alerts)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// Sync-request listener: other services (and the scheduler) publish to
	// the sync topic, we run the merge for that carrier.
	if cfg.KAFKA_BROKER != "" && cfg.KAFKA_SYNC_TOPIC != "" {
		consumer := pkgkafka.NewConsumer([]string{cfg.KAFKA_BROKER}, cfg.KAFKA_SYNC_TOPIC, "catalog-group")
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer consumer.Close()

			handler := func(ctx context.Context, key []byte, value []byte) error {
				var req syncRequest
				if err := json.Unmarshal(value, &req); err != nil {
					log.Printf("failed to unmarshal sync request: %v", err)
					return nil // malformed message, do not retry forever
				}
				kind := models.ResourceKind(req.Kind)
				if kind != models.KindBox && kind != models.KindService {
					log.Printf("sync request with unknown kind %q", req.Kind)
					return nil
				}
				if err := svc.SyncCarrier(ctx, req.Carrier, kind, req.Credentials); err != nil {
					log.Printf("❌ Sync failed for %s: %v", req.Carrier, err)
					return err
				}
				log.Printf("✅ Synced %s %s catalog", req.Carrier, req.Kind)
				return nil
			}
			consumer.Start(ctx, handler)
		}()
	}

	log.Println("Catalog service running. Press Ctrl+C to stop")
	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, syscall.SIGINT, syscall.SIGTERM)
	<-stopSignal

	// Shutdown sequence: stop the consumer loop first, then close the
	// outbound connections once in-flight work drained.
	log.Println("🛑 Shutting down...")
	cancel()
	wg.Wait()
	if kafkaProducer != nil {
		kafkaProducer.Close()
	}
	if rabbitClient != nil {
		rabbitClient.Close()
	}
	log.Println("🛑 Catalog service stopped.")
}

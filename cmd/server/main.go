package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"pitchbook/api/grpcserver"
	pb "pitchbook/api/pb"
	"pitchbook/config"
	"pitchbook/domain/book"
	"pitchbook/infra/kafka"
	"pitchbook/infra/memory"
	"pitchbook/infra/sequence"
	entrywal "pitchbook/infra/wal/entry"
	exitwal "pitchbook/infra/wal/exit"
	"pitchbook/jobs/broadcaster"
	"pitchbook/jobs/intake"
	"pitchbook/jobs/quotes"
	"pitchbook/service"
	"pitchbook/snapshot"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *book.Order {
		return &book.Order{}
	})
	ring := memory.NewRetireRing(1 << 18)
	reader := snapshot.NewReader()
	seqGen := sequence.New(0)

	// ---------------- Domain ----------------

	lob := book.NewLimitOrderBook()

	// ---------------- Recovery ----------------

	baseSeq, err := snapshot.Load(
		filepath.Join(cfg.SnapshotDir, "snapshot.bin"), lob, pool)
	if err != nil {
		log.Fatal("snapshot load failed", zap.Error(err))
	}
	if err := service.ReplayFromWAL(cfg.WALDir, baseSeq, lob, pool, seqGen, log); err != nil {
		log.Fatal("journal replay failed", zap.Error(err))
	}

	// ---------------- Durability ----------------

	journal, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.WALDir,
		SegmentSize: cfg.SegmentSize,
	})
	if err != nil {
		log.Fatal("journal init failed", zap.Error(err))
	}
	defer journal.Close()

	outbox, err := exitwal.Open(cfg.OutboxDir)
	if err != nil {
		log.Fatal("outbox init failed", zap.Error(err))
	}
	defer outbox.Close()

	// ---------------- Service ----------------

	svc := service.NewOrderService(lob, pool, ring, reader, journal, outbox, seqGen, log)

	// ---------------- Background Jobs ----------------

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval)

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.AdvanceEpoch()
			}
		}
	}()

	bc, err := broadcaster.New(outbox, cfg.Kafka.Brokers,
		cfg.Kafka.ExecutionTopic, cfg.DrainInterval, log)
	if err != nil {
		log.Fatal("broadcaster init failed", zap.Error(err))
	}
	defer bc.Close()
	bc.Start(ctx)

	quoteProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.QuoteTopic)
	defer quoteProducer.Close()
	quotes.New(svc, quoteProducer, cfg.Symbol, cfg.QuoteLevels,
		cfg.QuoteInterval, log).Start(ctx)

	consumer := intake.New(svc, cfg.Kafka.Brokers, cfg.Kafka.IntakeTopic,
		cfg.Kafka.IntakeGroupID, cfg.Symbol, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil {
			log.Error("intake stopped", zap.Error(err))
		}
	}()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("listen failed", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderBookServer(grpcSrv, grpcserver.NewServer(svc, log))

	go func() {
		<-ctx.Done()
		grpcSrv.GracefulStop()
	}()

	log.Info("engine running",
		zap.String("addr", cfg.GRPCAddr), zap.String("symbol", cfg.Symbol))
	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatal("gRPC server exited", zap.Error(err))
	}
}

package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/idea-board/api/controllers"
	"github.com/alex-pricope/idea-board/api/transport"
	"github.com/alex-pricope/idea-board/board"
	"github.com/alex-pricope/idea-board/logging"
	"github.com/alex-pricope/idea-board/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config  *Config
	closers []func() error
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r, err := s.Router(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to build router: %v", err)
		panic("failed to build router: " + err.Error())
	}
	defer s.Close()

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// Router wires storage, the board and every controller into a gin engine.
func (s *Server) Router(ctx context.Context) (*gin.Engine, error) {
	r := transport.NewRouter(s.config.GinMode)

	kv, err := s.newKeyValueStore(ctx)
	if err != nil {
		return nil, err
	}

	opts := []board.Option{board.WithLedgerKey(s.config.LedgerKey)}
	if !s.config.Seed {
		opts = append(opts, board.WithoutSeed())
	}
	ideaBoard := board.NewBoard(ctx, kv, opts...)

	//Register controllers
	controllers.NewIdeasController(ideaBoard).RegisterRoutes(r)
	controllers.NewViewController(ideaBoard).RegisterRoutes(r)
	controllers.NewExportController(ideaBoard).RegisterRoutes(r)
	controllers.NewMetaController().RegisterRoutes(r)

	return r, nil
}

func (s *Server) newKeyValueStore(ctx context.Context) (storage.KeyValueStore, error) {
	logging.Log.Infof("Using '%s' storage backend", s.config.Backend)

	switch s.config.Backend {
	case BackendMemory, "":
		return storage.NewMemoryStore(), nil
	case BackendFile:
		return storage.NewFileStore(s.config.FilePath), nil
	case BackendRedis:
		kv, err := storage.NewRedisKeyValueStore(s.config.RedisURL, s.config.RedisPrefix)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, kv.Close)
		return kv, nil
	case BackendDynamo:
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			logging.Log.Errorf("failed to load AWS config: %v", err)
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return &storage.DynamoKeyValueStore{
			Client:    dynamodb.NewFromConfig(cfg),
			TableName: s.config.TableName,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend '%s'", s.config.Backend)
	}
}

func (s *Server) Close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			logging.Log.Warnf("failed to close storage: %v", err)
		}
	}
	s.closers = nil
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}

package bootstrap

import (
	"log"
	"time"

	"lecture-notes-be/internal/config"
	"lecture-notes-be/internal/controller"
	"lecture-notes-be/internal/pkg/logger"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/internal/service"
	"lecture-notes-be/pkg/catalog"
	"lecture-notes-be/pkg/llm/factory"
	pktNats "lecture-notes-be/pkg/nats"
	"lecture-notes-be/pkg/studygen/extract"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	CourseController    controller.ICourseController
	NoteController      controller.INoteController
	QuizController      controller.IQuizController
	FlashcardController controller.IFlashcardController
	TestController      controller.ITestController
	SummaryController   controller.ISummaryController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External collaborators
	llmProvider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Keys.GoogleGemini,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}

	catalogClient := catalog.NewClient(
		cfg.Catalog.BaseURL,
		time.Duration(cfg.Catalog.CacheTTLMinutes)*time.Minute,
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, uowFactory, sysLogger)

	authService := service.NewAuthService(uowFactory, natsPub)
	userService := service.NewUserService(uowFactory)
	courseService := service.NewCourseService(uowFactory, catalogClient)
	noteService := service.NewNoteService(uowFactory, natsPub)
	quizService := service.NewQuizService(uowFactory)
	flashcardService := service.NewFlashcardService(uowFactory)
	testService := service.NewTestService(uowFactory)

	generationService := service.NewGenerationService(
		uowFactory,
		llmProvider,
		publisherService,
		natsPub,
		sysLogger,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		extract.Options{FailOnInvalid: cfg.Ai.StrictExtraction},
	)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		CourseController:    controller.NewCourseController(courseService),
		NoteController:      controller.NewNoteController(noteService, cfg.App.UploadDir, cfg.App.BaseURL),
		QuizController:      controller.NewQuizController(quizService, generationService),
		FlashcardController: controller.NewFlashcardController(flashcardService, generationService),
		TestController:      controller.NewTestController(testService, generationService),
		SummaryController:   controller.NewSummaryController(generationService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

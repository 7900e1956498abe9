package main

import (
	"github.com/gin-gonic/gin"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
	"go.etcd.io/bbolt"
)

type Config struct {
	DatabaseFilepath string
	OpenAiApiKey     string
	SerperApiKey     string
}

type ServiceContainer struct {
	Database        *bbolt.DB
	SheetRepository contracts.SheetRepository
	SheetProcessor  contracts.SheetProcessor
	Backend         contracts.ExecutionBackend
	ApiController   contracts.ApiController
	Router          *gin.Engine
}

func BuildServiceContainer(config Config) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)

	serializer := NewGridJsonSerializer()
	container.SheetRepository = NewSheetRepository(container.Database, serializer)

	container.Backend = NewWebSearchBackend(config.SerperApiKey, NewOpenAiBackend(config.OpenAiApiKey))
	container.SheetProcessor = NewSheetProcessor(
		NewFormulaParser(),
		NewReferenceResolver(NewColumnCodec()),
		container.Backend,
	)

	var credentialErr error
	if config.OpenAiApiKey == "" {
		credentialErr = MissingCredentialError
	}

	container.ApiController = NewApiController(
		container.SheetRepository, container.SheetProcessor,
		container.Backend, NewXlsxCodec(), credentialErr,
	)

	container.Router = SetupRouter(container.ApiController)

	return
}

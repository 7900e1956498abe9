package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const ListenPort = ":8080"

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	config := Config{
		DatabaseFilepath: os.Getenv("DATABASE_FILEPATH"),
		OpenAiApiKey:     os.Getenv("OPENAI_API_KEY"),
		SerperApiKey:     os.Getenv("SERPER_API_KEY"),
	}

	serviceContainer, err := BuildServiceContainer(config)

	if err == nil {
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(ListenPort, serviceContainer.Router)
	}

	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}

package main

import (
	"os"

	"github.com/siderealhq/insight-service/insightservice"
)

func main() {
	if err := insightservice.Run(); err != nil {
		os.Exit(1)
	}
}

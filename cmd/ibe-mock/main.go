package main

import (
	"os"

	"github.com/ots-platform/ibe-mock/ibemock"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := ibemock.Run(); err != nil {
		log.Error().Err(err).Msg("ibe-mock exited with error")
		os.Exit(1)
	}
}

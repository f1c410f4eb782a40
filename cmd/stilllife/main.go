package main

import (
	"flag"
	"runtime"

	"go.uber.org/zap"

	"github.com/leterax/go-stilllife/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Parse command line flags
	width := flag.Int("width", 1000, "Window width in pixels")
	height := flag.Int("height", 800, "Window height in pixels")
	title := flag.String("title", "Still Life", "Window title")
	assets := flag.String("assets", "assets/textures", "Directory containing the texture images")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize the renderer and scene
	renderer, err := render.NewRenderer(*width, *height, *title, *assets, logger)
	if err != nil {
		logger.Fatal("failed to initialize renderer", zap.Error(err))
	}

	renderer.Run()
}
